// Package domain holds the shared types for TableShare.
// The engagement engine drives visitor participation through points,
// levels, day streaks, and cooldown-gated tasks. Level-ups unlock
// donation pledges that feed the public counter.
package domain

import "time"

// ─── Profile ────────────────────────────────────────────────────────────────

// EngagementProfile is the durable per-visitor record of progress.
// It is serialized wholesale to a single storage key and rewritten on
// every mutation.
type EngagementProfile struct {
	TotalPoints    int64            `json:"total_points"`
	CurrentLevel   int              `json:"current_level"`
	TotalDonations float64          `json:"total_donations"`
	DayStreak      int              `json:"day_streak"`
	ActionsToday   int              `json:"actions_today"`
	LivesImpacted  int64            `json:"lives_impacted"`
	LastVisitDate  string           `json:"last_visit_date"` // "2006-01-02", local calendar date
	Completions    []TaskCompletion `json:"task_completions"`
}

// TaskCompletion records how often a task has been completed and when
// it was last completed. One entry per distinct task id.
type TaskCompletion struct {
	TaskID          string    `json:"task_id"`
	Count           int       `json:"count"`
	LastCompletedAt time.Time `json:"last_completed_at"`
}

// Completion returns the completion entry for a task id, or nil.
func (p *EngagementProfile) Completion(taskID string) *TaskCompletion {
	for i := range p.Completions {
		if p.Completions[i].TaskID == taskID {
			return &p.Completions[i]
		}
	}
	return nil
}

// DefaultProfile returns a zeroed first-visit profile.
func DefaultProfile() EngagementProfile {
	return EngagementProfile{CurrentLevel: 1}
}

// ─── Tasks ──────────────────────────────────────────────────────────────────

// TaskCategory groups tasks for the rotating daily selection.
type TaskCategory string

const (
	CatLearn     TaskCategory = "learn"
	CatShare     TaskCategory = "share"
	CatVolunteer TaskCategory = "volunteer"
	CatDonate    TaskCategory = "donate"
)

// Task is a catalogued visitor action that awards points. A task with
// Repeatable=false can be completed exactly once; otherwise Cooldown
// gates how soon it may be completed again.
type Task struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Points      int64         `json:"points"`
	Category    TaskCategory  `json:"category"`
	Cooldown    time.Duration `json:"cooldown_ns"`
	Repeatable  bool          `json:"repeatable"`
}

// TaskStatus is derived on demand from a task and its completion entry.
type TaskStatus struct {
	CanComplete       bool          `json:"can_complete"`
	CooldownRemaining time.Duration `json:"cooldown_remaining_ns"`
}

// ─── Levels ─────────────────────────────────────────────────────────────────

// Level is a named tier unlocked at a point threshold. Reaching it
// pledges Donation dollars to partner organizations.
type Level struct {
	Level          int     `json:"level"`
	PointsRequired int64   `json:"points_required"`
	Title          string  `json:"title"`
	Donation       float64 `json:"donation"`
}

// ─── Notifications ──────────────────────────────────────────────────────────

// NotificationType categorizes notifications.
type NotificationType string

const (
	NotifyLevelUp         NotificationType = "level_up"
	NotifyStreakMilestone NotificationType = "streak_milestone"
)

// Notification is a visitor-facing message.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
	Shown     bool             `json:"shown"`
}

// NotificationPolicy caps how often notifications are created.
type NotificationPolicy struct {
	MaxPerDay  int    `json:"max_per_day"`
	QuietStart string `json:"quiet_start"` // "22:00"
	QuietEnd   string `json:"quiet_end"`   // "08:00"
}

// DefaultNotificationPolicy returns the default cap and quiet hours.
func DefaultNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{
		MaxPerDay:  3,
		QuietStart: "22:00",
		QuietEnd:   "08:00",
	}
}
