package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tableshare/tableshare/internal/app/volunteer"
	"github.com/tableshare/tableshare/internal/domain"
)

// --- POST /api/volunteers ---

func (s *Server) handleVolunteerSubmit(w http.ResponseWriter, r *http.Request) {
	var req domain.VolunteerSignup
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := s.volunteers.Submit(req)
	if err != nil {
		var verr *volunteer.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusServiceUnavailable, "could not save your signup, please try again")
		return
	}

	// Submitting the form counts as the one-shot signup task.
	s.engine.CompleteTask("volunteer-signup")

	writeJSON(w, http.StatusCreated, saved)
}

// --- GET /api/volunteers ---

func (s *Server) handleVolunteerList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := domain.SignupStatus(q.Get("status"))
	limit := 0
	if v := q.Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	signups, err := s.volunteers.List(status, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if signups == nil {
		signups = []domain.VolunteerSignup{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"volunteers": signups})
}
