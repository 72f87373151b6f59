package domain

import "time"

// SignupStatus tracks a volunteer submission through review.
type SignupStatus string

const (
	SignupPending  SignupStatus = "pending"
	SignupApproved SignupStatus = "approved"
	SignupDeclined SignupStatus = "declined"
)

// VolunteerSignup is one submission from the volunteer form.
// UserID/UserEmail are optional and come from the site's auth provider
// when the visitor was signed in; the backend never authenticates.
type VolunteerSignup struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Location    string       `json:"location,omitempty"`
	Interest    string       `json:"interest"`
	Message     string       `json:"message,omitempty"`
	UserID      string       `json:"user_id,omitempty"`
	UserEmail   string       `json:"user_email,omitempty"`
	Status      SignupStatus `json:"status"`
	SubmittedAt time.Time    `json:"submitted_at"`
}

// Donation is one append-only donation event. The public counter is the
// running sum of Amount across all events.
type Donation struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
