package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tableshare/tableshare/internal/api"
	"github.com/tableshare/tableshare/internal/app/donation"
	"github.com/tableshare/tableshare/internal/app/engagement"
	"github.com/tableshare/tableshare/internal/app/volunteer"
	"github.com/tableshare/tableshare/internal/domain"
	"github.com/tableshare/tableshare/internal/infra/logging"
	"github.com/tableshare/tableshare/internal/infra/sqlite"
)

// Daemon is the core TableShare runtime. It wires together all services.
type Daemon struct {
	Config Config
	DB     *sqlite.DB
	Server *api.Server
	cancel context.CancelFunc

	Engine       *engagement.Engine
	Notification *engagement.NotificationService
	Volunteers   *volunteer.Service
	Donations    *donation.Service
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	logging.Setup(cfg.Logging.Level)

	dir := cfg.Storage.Dir
	if dir == "" {
		dir = Home()
	}
	db, err := sqlite.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	policy := domain.NotificationPolicy{
		MaxPerDay:  cfg.Engagement.NotificationsPerDay,
		QuietStart: cfg.Engagement.QuietStart,
		QuietEnd:   cfg.Engagement.QuietEnd,
	}
	if policy.MaxPerDay <= 0 {
		policy = domain.DefaultNotificationPolicy()
	}

	notify := engagement.NewNotificationServiceWithPolicy(db, policy)
	donations := donation.NewService(db)
	engine := engagement.NewEngine(db, notify, donations)
	volunteers := volunteer.NewService(db)

	srv := api.NewServer(engine, notify, volunteers, donations)
	srv.SetSiteURL(cfg.Site.PublicURL)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:       cfg,
		DB:           db,
		Server:       srv,
		Engine:       engine,
		Notification: notify,
		Volunteers:   volunteers,
		Donations:    donations,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	// Reshuffle the daily task rotation at local midnight.
	go d.rotateDaily(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.Server.Host, d.Config.Server.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // SSE connections stay open
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	log.Info().Str("addr", addr).Msg("TableShare serving")
	if d.Config.Telemetry.Prometheus {
		log.Info().Msgf("metrics: http://%s/metrics", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// rotateDaily refreshes the rotating task selection shortly after each
// local midnight.
func (d *Daemon) rotateDaily(ctx context.Context) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 5, 0, now.Location()).AddDate(0, 0, 1)
		select {
		case <-ctx.Done():
			return
		case <-time.After(next.Sub(now)):
			d.Engine.RefreshDailyTasks()
		}
	}
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
