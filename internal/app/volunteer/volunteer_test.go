package volunteer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tableshare/tableshare/internal/app/volunteer"
	"github.com/tableshare/tableshare/internal/domain"
	"github.com/tableshare/tableshare/internal/infra/sqlite"
)

func testService(t *testing.T) *volunteer.Service {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return volunteer.NewService(db)
}

func validSignup() domain.VolunteerSignup {
	return domain.VolunteerSignup{
		Name:     "Ada Martin",
		Email:    "Ada@Example.org",
		Interest: "meal-service",
		Message:  "Happy to help on weekends.",
	}
}

func TestSubmit_FillsServerFields(t *testing.T) {
	svc := testService(t)

	saved, err := svc.Submit(validSignup())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected generated id")
	}
	if saved.Status != domain.SignupPending {
		t.Errorf("expected pending status, got %q", saved.Status)
	}
	if saved.SubmittedAt.IsZero() {
		t.Error("expected submitted_at to be set")
	}
	if saved.Email != "ada@example.org" {
		t.Errorf("expected lowercased email, got %q", saved.Email)
	}
}

func TestSubmit_Validation(t *testing.T) {
	svc := testService(t)

	cases := []struct {
		name   string
		mutate func(*domain.VolunteerSignup)
	}{
		{"empty name", func(v *domain.VolunteerSignup) { v.Name = "  " }},
		{"no at sign", func(v *domain.VolunteerSignup) { v.Email = "ada.example.org" }},
		{"no domain dot", func(v *domain.VolunteerSignup) { v.Email = "ada@example" }},
		{"missing interest", func(v *domain.VolunteerSignup) { v.Interest = "" }},
		{"unknown interest", func(v *domain.VolunteerSignup) { v.Interest = "skydiving" }},
		{"oversized message", func(v *domain.VolunteerSignup) { v.Message = strings.Repeat("x", 2001) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := validSignup()
			tc.mutate(&v)
			_, err := svc.Submit(v)
			var verr *volunteer.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	count, err := svc.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("rejected submissions must not be stored, got %d", count)
	}
}

func TestList_FiltersByStatus(t *testing.T) {
	svc := testService(t)

	a, _ := svc.Submit(validSignup())
	b := validSignup()
	b.Name = "Ben Ortiz"
	b.Email = "ben@example.org"
	if _, err := svc.Submit(b); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.SetStatus(a.ID, domain.SignupApproved); err != nil {
		t.Fatalf("set status: %v", err)
	}

	pending, err := svc.List(domain.SignupPending, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pending) != 1 || pending[0].Name != "Ben Ortiz" {
		t.Errorf("expected only Ben pending, got %+v", pending)
	}
}

func TestSetStatus_RejectsUnknown(t *testing.T) {
	svc := testService(t)
	if err := svc.SetStatus("whatever", "archived"); err == nil {
		t.Error("expected error for unknown status")
	}
}
