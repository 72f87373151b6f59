package sqlite

import (
	"database/sql"
	"time"

	"github.com/tableshare/tableshare/internal/domain"
)

// ─── Volunteers ─────────────────────────────────────────────────────────────

// InsertVolunteer stores a new volunteer signup.
func (d *DB) InsertVolunteer(v domain.VolunteerSignup) error {
	_, err := d.db.Exec(
		`INSERT INTO volunteers (id, name, email, phone, location, interest, message,
		                         user_id, user_email, status, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Name, v.Email, v.Phone, v.Location, v.Interest, v.Message,
		v.UserID, v.UserEmail, string(v.Status), v.SubmittedAt.Unix(),
	)
	return err
}

// GetVolunteer retrieves a signup by id. Returns nil if not found.
func (d *DB) GetVolunteer(id string) (*domain.VolunteerSignup, error) {
	row := d.db.QueryRow(
		`SELECT id, name, email, phone, location, interest, message,
		        user_id, user_email, status, submitted_at
		 FROM volunteers WHERE id = ?`, id,
	)
	return scanVolunteer(row)
}

// ListVolunteers returns signups newest first, optionally filtered by status.
func (d *DB) ListVolunteers(status domain.SignupStatus, limit int) ([]domain.VolunteerSignup, error) {
	query := `SELECT id, name, email, phone, location, interest, message,
	                 user_id, user_email, status, submitted_at
	          FROM volunteers`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY submitted_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signups []domain.VolunteerSignup
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		signups = append(signups, *v)
	}
	return signups, rows.Err()
}

// SetVolunteerStatus updates a signup's review status.
func (d *DB) SetVolunteerStatus(id string, status domain.SignupStatus) error {
	_, err := d.db.Exec(`UPDATE volunteers SET status = ? WHERE id = ?`, string(status), id)
	return err
}

// VolunteerCount returns the total number of signups.
func (d *DB) VolunteerCount() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM volunteers`).Scan(&count)
	return count, err
}

func scanVolunteer(s scanner) (*domain.VolunteerSignup, error) {
	var v domain.VolunteerSignup
	var status string
	var submittedAt int64
	err := s.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Location, &v.Interest,
		&v.Message, &v.UserID, &v.UserEmail, &status, &submittedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v.Status = domain.SignupStatus(status)
	v.SubmittedAt = time.Unix(submittedAt, 0)
	return &v, nil
}
