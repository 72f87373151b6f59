package engagement_test

import (
	"testing"

	"github.com/tableshare/tableshare/internal/app/engagement"
)

func TestCatalog_Invariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, task := range engagement.Catalog() {
		if task.ID == "" {
			t.Error("task with empty id")
		}
		if seen[task.ID] {
			t.Errorf("duplicate task id %q", task.ID)
		}
		seen[task.ID] = true

		if task.Points <= 0 {
			t.Errorf("task %q: points must be positive, got %d", task.ID, task.Points)
		}
		if task.Cooldown < 0 {
			t.Errorf("task %q: negative cooldown", task.ID)
		}
		if task.Title == "" || task.Category == "" {
			t.Errorf("task %q: missing title or category", task.ID)
		}
	}
}

func TestLevels_StrictlyIncreasing(t *testing.T) {
	for i := 1; i < len(engagement.Levels); i++ {
		prev, cur := engagement.Levels[i-1], engagement.Levels[i]
		if cur.PointsRequired <= prev.PointsRequired {
			t.Errorf("level %d threshold %d not above level %d threshold %d",
				cur.Level, cur.PointsRequired, prev.Level, prev.PointsRequired)
		}
		if cur.Level != prev.Level+1 {
			t.Errorf("level numbering gap between %d and %d", prev.Level, cur.Level)
		}
	}
	if engagement.Levels[0].PointsRequired != 0 {
		t.Error("level 1 must start at 0 points")
	}
}
