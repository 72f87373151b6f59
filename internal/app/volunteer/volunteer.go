// Package volunteer implements the volunteer-signup intake.
// Submissions land in the volunteers table with status "pending" for
// the outreach team to review; nothing here sends email or retries.
package volunteer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tableshare/tableshare/internal/domain"
	"github.com/tableshare/tableshare/internal/infra/metrics"
	"github.com/tableshare/tableshare/internal/infra/sqlite"
)

// Interests the form accepts. Kept in sync with the site's dropdown.
var Interests = []string{
	"meal-service", "food-sorting", "delivery", "fundraising", "outreach", "other",
}

// Service manages volunteer signups.
type Service struct {
	db *sqlite.DB
}

// NewService creates a volunteer service.
func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

// Submit validates and stores a signup, returning it with its id,
// timestamp, and pending status filled in.
func (s *Service) Submit(v domain.VolunteerSignup) (domain.VolunteerSignup, error) {
	if err := validate(v); err != nil {
		metrics.VolunteerRejected.WithLabelValues(err.reason).Inc()
		return domain.VolunteerSignup{}, err
	}

	v.ID = uuid.NewString()
	v.Status = domain.SignupPending
	v.SubmittedAt = time.Now()
	v.Name = strings.TrimSpace(v.Name)
	v.Email = strings.TrimSpace(strings.ToLower(v.Email))

	if err := s.db.InsertVolunteer(v); err != nil {
		return domain.VolunteerSignup{}, fmt.Errorf("store signup: %w", err)
	}

	metrics.VolunteerSignups.Inc()
	return v, nil
}

// List returns signups newest first, optionally filtered by status.
func (s *Service) List(status domain.SignupStatus, limit int) ([]domain.VolunteerSignup, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.db.ListVolunteers(status, limit)
}

// SetStatus moves a signup through review.
func (s *Service) SetStatus(id string, status domain.SignupStatus) error {
	switch status {
	case domain.SignupPending, domain.SignupApproved, domain.SignupDeclined:
	default:
		return fmt.Errorf("unknown status %q", status)
	}
	return s.db.SetVolunteerStatus(id, status)
}

// Count returns the total number of signups.
func (s *Service) Count() (int, error) {
	return s.db.VolunteerCount()
}

// ValidationError describes a rejected submission with a
// human-readable cause for the form to display.
type ValidationError struct {
	reason string
	msg    string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(reason, msg string) *ValidationError {
	return &ValidationError{reason: reason, msg: msg}
}

func validate(v domain.VolunteerSignup) *ValidationError {
	if strings.TrimSpace(v.Name) == "" {
		return invalid("name", "name is required")
	}
	email := strings.TrimSpace(v.Email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return invalid("email", "a valid email address is required")
	}
	if v.Interest == "" {
		return invalid("interest", "pick a volunteer interest")
	}
	known := false
	for _, i := range Interests {
		if v.Interest == i {
			known = true
			break
		}
	}
	if !known {
		return invalid("interest", fmt.Sprintf("unknown interest %q", v.Interest))
	}
	if len(v.Message) > 2000 {
		return invalid("message", "message is too long (2000 characters max)")
	}
	return nil
}
