package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tableshare/tableshare/internal/app/engagement"
	"github.com/tableshare/tableshare/internal/domain"
)

// taskView is a catalog task annotated with its live status.
type taskView struct {
	domain.Task
	Status domain.TaskStatus `json:"status"`
}

// --- GET /api/engagement/summary ---

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Summary())
}

// --- GET /api/engagement/level ---

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	sum := s.engine.Summary()
	writeJSON(w, http.StatusOK, map[string]any{
		"level":            sum.CurrentLevel,
		"title":            sum.LevelTitle,
		"total_points":     sum.TotalPoints,
		"progress_percent": sum.ProgressPercent,
		"is_max_level":     sum.IsMaxLevel,
		"levels":           engagement.Levels,
	})
}

// --- GET /api/engagement/streak ---

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	sum := s.engine.Summary()
	writeJSON(w, http.StatusOK, map[string]any{
		"day_streak":    sum.DayStreak,
		"actions_today": sum.ActionsToday,
		"last_visit":    sum.LastVisitDate,
	})
}

// --- GET /api/engagement/tasks ---
// ?all=true returns the full catalog instead of the daily rotation.

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	tasks := s.engine.DailyTasks()
	if r.URL.Query().Get("all") == "true" {
		tasks = s.engine.Tasks()
	}

	now := time.Now()
	views := make([]taskView, len(tasks))
	for i, t := range tasks {
		st, _ := s.engine.TaskStatusAt(t.ID, now)
		views[i] = taskView{Task: t, Status: st}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": views})
}

// --- POST /api/engagement/tasks/refresh ---

func (s *Server) handleRefreshTasks(w http.ResponseWriter, r *http.Request) {
	s.engine.RefreshDailyTasks()
	s.handleTasks(w, r)
}

// --- POST /api/engagement/tasks/{id}/complete ---

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	completed := s.engine.CompleteTask(id)
	writeJSON(w, http.StatusOK, map[string]any{
		"completed": completed,
		"summary":   s.engine.Summary(),
	})
}

// --- GET /api/engagement/notifications ---

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	notifs, err := s.notify.Pending(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if notifs == nil {
		notifs = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notifs})
}

// --- POST /api/engagement/notifications/{id}/shown ---

func (s *Server) handleNotificationShown(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := s.notify.MarkShown(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
}
