// Package engagement implements the TableShare engagement engine.
// One profile per visiting device: points, levels, day streaks, and
// cooldown-gated tasks. Every mutation is a single synchronous
// transition followed by a wholesale persist of the profile.
package engagement

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tableshare/tableshare/internal/domain"
	"github.com/tableshare/tableshare/internal/infra/metrics"
)

// profileKey is the well-known storage key holding the serialized profile.
const profileKey = "profile"

// dateLayout is the local calendar date format used for streak math.
const dateLayout = "2006-01-02"

// pointsPerLife converts points into the lives-impacted metric.
const pointsPerLife = 25

// ProfileStore is the key-value persistence port. Any store that can
// load and save one string per key works; absent keys read as "".
type ProfileStore interface {
	GetState(key string) (string, error)
	SetState(key, value string) error
}

// PledgeSink receives donation pledges unlocked by level-ups so the
// public counter reflects them. Implementations must not block.
type PledgeSink interface {
	Pledge(amount float64, note string)
}

// Engine owns the engagement profile. All operations are safe for
// concurrent use; mutations serialize behind one mutex.
type Engine struct {
	mu      sync.Mutex
	store   ProfileStore
	notify  *NotificationService // nil disables notifications
	pledges PledgeSink           // nil disables pledge mirroring

	profile domain.EngagementProfile
	catalog []domain.Task
	daily   []domain.Task

	dailyPerCategory int
}

// Summary is the read-only snapshot exposed to consumers.
type Summary struct {
	domain.EngagementProfile
	LevelTitle      string  `json:"level_title"`
	ProgressPercent float64 `json:"progress_percent"`
	IsMaxLevel      bool    `json:"is_max_level"`
}

// NewEngine loads (or initializes) the profile and applies the daily
// rollover against the current time.
func NewEngine(store ProfileStore, notify *NotificationService, pledges PledgeSink) *Engine {
	return NewEngineAt(store, notify, pledges, time.Now())
}

// NewEngineAt is NewEngine with an explicit clock for testability.
func NewEngineAt(store ProfileStore, notify *NotificationService, pledges PledgeSink, now time.Time) *Engine {
	return NewEngineWithCatalog(store, notify, pledges, Catalog(), now)
}

// NewEngineWithCatalog builds an engine over a custom task catalog.
func NewEngineWithCatalog(store ProfileStore, notify *NotificationService, pledges PledgeSink, catalog []domain.Task, now time.Time) *Engine {
	e := &Engine{
		store:            store,
		notify:           notify,
		pledges:          pledges,
		catalog:          catalog,
		dailyPerCategory: 2,
	}
	e.profile = e.loadProfile()
	e.rolloverLocked(now)
	e.persistLocked()
	e.daily = pickDailyTasks(e.catalog, e.dailyPerCategory, now.UnixNano())
	return e
}

// loadProfile reads the serialized profile, treating absent or
// malformed payloads as a first visit.
func (e *Engine) loadProfile() domain.EngagementProfile {
	raw, err := e.store.GetState(profileKey)
	if err != nil || raw == "" {
		if err != nil {
			log.Warn().Err(err).Msg("engagement: load profile, starting fresh")
		}
		return domain.DefaultProfile()
	}

	var p domain.EngagementProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Warn().Err(err).Msg("engagement: malformed profile, starting fresh")
		return domain.DefaultProfile()
	}
	if p.TotalPoints < 0 {
		return domain.DefaultProfile()
	}

	// Heal older schemas: level and lives are derived from points.
	p.CurrentLevel = LevelForPoints(p.TotalPoints)
	p.LivesImpacted = p.TotalPoints / pointsPerLife
	return p
}

// rolloverLocked applies the calendar-day transition: same day is a
// no-op, a one-day gap extends the streak, anything longer resets it.
// Callers must hold e.mu (or be the constructor).
func (e *Engine) rolloverLocked(now time.Time) {
	today := now.Format(dateLayout)
	if e.profile.LastVisitDate == today {
		return
	}

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if e.profile.LastVisitDate == yesterday {
		e.profile.DayStreak++
		e.streakMilestone(now)
	} else {
		e.profile.DayStreak = 1
	}
	e.profile.ActionsToday = 0
	e.profile.LastVisitDate = today
	metrics.DayStreak.Set(float64(e.profile.DayStreak))
	e.persistLocked()
}

// streakMilestone emits a notification on round streak numbers.
func (e *Engine) streakMilestone(now time.Time) {
	days := e.profile.DayStreak
	if days != 7 && days != 30 && days != 100 {
		return
	}
	if e.notify == nil {
		return
	}
	_, err := e.notify.Create(domain.Notification{
		Type:      domain.NotifyStreakMilestone,
		Title:     fmt.Sprintf("%d-day streak!", days),
		Body:      fmt.Sprintf("You've shown up %d days in a row. Neighbors notice.", days),
		CreatedAt: now,
	})
	if err != nil {
		log.Warn().Err(err).Msg("engagement: streak notification")
	}
}

// CompleteTask records a task completion at the current time.
func (e *Engine) CompleteTask(taskID string) bool {
	return e.CompleteTaskAt(taskID, time.Now())
}

// CompleteTaskAt records a task completion. Unknown ids and
// cooldown-blocked tasks are silent no-ops. Returns whether the
// completion counted.
func (e *Engine) CompleteTaskAt(taskID string, now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rolloverLocked(now)

	task, ok := e.findTask(taskID)
	if !ok {
		return false
	}
	if st := statusFor(task, e.profile.Completion(taskID), now); !st.CanComplete {
		return false
	}

	p := &e.profile
	p.TotalPoints += task.Points
	if c := p.Completion(taskID); c != nil {
		c.Count++
		c.LastCompletedAt = now
	} else {
		p.Completions = append(p.Completions, domain.TaskCompletion{
			TaskID: taskID, Count: 1, LastCompletedAt: now,
		})
	}
	p.ActionsToday++
	p.LivesImpacted = p.TotalPoints / pointsPerLife

	// All level thresholds crossed by this update are awarded in
	// this single pass and never again.
	oldLevel := p.CurrentLevel
	newLevel := LevelForPoints(p.TotalPoints)
	if newLevel > oldLevel {
		var pledged float64
		for l := oldLevel + 1; l <= newLevel; l++ {
			pledged += LevelData(l).Donation
		}
		p.TotalDonations += pledged
		p.CurrentLevel = newLevel
		e.levelUp(newLevel, pledged, now)
	}

	metrics.TasksCompleted.WithLabelValues(string(task.Category)).Inc()
	metrics.PointsAwarded.Add(float64(task.Points))
	metrics.CurrentLevel.Set(float64(p.CurrentLevel))

	e.persistLocked()
	return true
}

// levelUp emits the level-up side effects: a notification and a
// mirrored pledge on the public donation counter.
func (e *Engine) levelUp(level int, pledged float64, now time.Time) {
	data := LevelData(level)
	if e.notify != nil {
		_, err := e.notify.Create(domain.Notification{
			Type:      domain.NotifyLevelUp,
			Title:     fmt.Sprintf("Level %d: %s", data.Level, data.Title),
			Body:      fmt.Sprintf("Your progress unlocked a $%.0f sponsor pledge.", pledged),
			CreatedAt: now,
		})
		if err != nil {
			log.Warn().Err(err).Msg("engagement: level-up notification")
		}
	}
	if e.pledges != nil && pledged > 0 {
		e.pledges.Pledge(pledged, fmt.Sprintf("level %d pledge", level))
	}
}

// TaskStatus reports whether a task can be completed right now.
func (e *Engine) TaskStatus(taskID string) (domain.TaskStatus, bool) {
	return e.TaskStatusAt(taskID, time.Now())
}

// TaskStatusAt is the pure status read against an explicit time.
func (e *Engine) TaskStatusAt(taskID string, now time.Time) (domain.TaskStatus, bool) {
	task, ok := e.findTask(taskID)
	if !ok {
		return domain.TaskStatus{}, false
	}
	e.mu.Lock()
	c := e.profile.Completion(taskID)
	var completion *domain.TaskCompletion
	if c != nil {
		cc := *c
		completion = &cc
	}
	e.mu.Unlock()
	return statusFor(task, completion, now), true
}

// statusFor computes a TaskStatus from a task and its completion entry.
func statusFor(task domain.Task, c *domain.TaskCompletion, now time.Time) domain.TaskStatus {
	if c == nil || c.Count == 0 {
		return domain.TaskStatus{CanComplete: true}
	}
	if !task.Repeatable {
		// Terminal: one-shot tasks never become available again.
		return domain.TaskStatus{CanComplete: false}
	}
	elapsed := now.Sub(c.LastCompletedAt)
	if elapsed >= task.Cooldown {
		return domain.TaskStatus{CanComplete: true}
	}
	return domain.TaskStatus{CanComplete: false, CooldownRemaining: task.Cooldown - elapsed}
}

// RefreshDailyTasks reshuffles the visitor-facing task selection.
// Persisted profile fields are untouched.
func (e *Engine) RefreshDailyTasks() {
	e.RefreshDailyTasksAt(time.Now())
}

// RefreshDailyTasksAt reshuffles with a seed derived from the given time.
func (e *Engine) RefreshDailyTasksAt(now time.Time) {
	picked := pickDailyTasks(e.catalog, e.dailyPerCategory, now.UnixNano())
	e.mu.Lock()
	e.daily = picked
	e.mu.Unlock()
}

// DailyTasks returns the current rotating selection.
func (e *Engine) DailyTasks() []domain.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Task, len(e.daily))
	copy(out, e.daily)
	return out
}

// Tasks returns the full catalog.
func (e *Engine) Tasks() []domain.Task {
	out := make([]domain.Task, len(e.catalog))
	copy(out, e.catalog)
	return out
}

// Summary returns a consistent snapshot with derived values.
func (e *Engine) Summary() Summary {
	return e.SummaryAt(time.Now())
}

// SummaryAt returns the snapshot after applying rollover for now.
func (e *Engine) SummaryAt(now time.Time) Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rolloverLocked(now)
	p := e.profile
	p.Completions = append([]domain.TaskCompletion(nil), e.profile.Completions...)
	return Summary{
		EngagementProfile: p,
		LevelTitle:        LevelData(p.CurrentLevel).Title,
		ProgressPercent:   progressPercent(p.TotalPoints, p.CurrentLevel),
		IsMaxLevel:        p.CurrentLevel >= MaxLevel(),
	}
}

// CurrentLevelData returns the level table entry for the current level.
func (e *Engine) CurrentLevelData() domain.Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	return LevelData(e.profile.CurrentLevel)
}

// findTask looks a task up in the catalog.
func (e *Engine) findTask(taskID string) (domain.Task, bool) {
	for _, t := range e.catalog {
		if t.ID == taskID {
			return t, true
		}
	}
	return domain.Task{}, false
}

// persistLocked writes the whole profile to the store. Write failures
// are swallowed: in-memory state stays authoritative and the next
// successful write reconciles.
func (e *Engine) persistLocked() {
	raw, err := json.Marshal(e.profile)
	if err != nil {
		log.Warn().Err(err).Msg("engagement: marshal profile")
		return
	}
	if err := e.store.SetState(profileKey, string(raw)); err != nil {
		log.Warn().Err(err).Msg("engagement: persist profile")
	}
}
