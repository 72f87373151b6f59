package daemon_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tableshare/tableshare/internal/daemon"
)

func TestHome_EnvOverride(t *testing.T) {
	t.Setenv("TABLESHARE_HOME", "/tmp/tableshare-test")
	if got := daemon.Home(); got != "/tmp/tableshare-test" {
		t.Errorf("expected env override, got %q", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("TABLESHARE_HOME", t.TempDir())

	cfg := daemon.DefaultConfig()
	if cfg.Server.Port != 8642 {
		t.Errorf("unexpected default port %d", cfg.Server.Port)
	}
	if cfg.Engagement.NotificationsPerDay != 3 {
		t.Errorf("unexpected notification cap %d", cfg.Engagement.NotificationsPerDay)
	}
	if cfg.Engagement.QuietStart != "22:00" || cfg.Engagement.QuietEnd != "08:00" {
		t.Errorf("unexpected quiet hours %s-%s", cfg.Engagement.QuietStart, cfg.Engagement.QuietEnd)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("unexpected log level %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("TABLESHARE_HOME", t.TempDir())

	cfg, err := daemon.LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected default host, got %q", cfg.Server.Host)
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("TABLESHARE_HOME", t.TempDir())

	cfg := daemon.DefaultConfig()
	cfg.Server.Port = 9001
	cfg.Telemetry.Prometheus = true
	cfg.Engagement.NotificationsPerDay = 5

	if err := daemon.SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := daemon.LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Server.Port != 9001 {
		t.Errorf("expected port 9001, got %d", loaded.Server.Port)
	}
	if !loaded.Telemetry.Prometheus {
		t.Error("expected prometheus enabled")
	}
	if loaded.Engagement.NotificationsPerDay != 5 {
		t.Errorf("expected cap 5, got %d", loaded.Engagement.NotificationsPerDay)
	}
}

func TestLoadConfig_BadTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TABLESHARE_HOME", home)

	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("not = [valid"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := daemon.LoadConfig(); err == nil {
		t.Error("expected parse error")
	}
}
