package sqlite

import (
	"time"

	"github.com/tableshare/tableshare/internal/domain"
)

// ─── Donations ──────────────────────────────────────────────────────────────

// InsertDonation appends a donation event and returns its id.
func (d *DB) InsertDonation(dn domain.Donation) (int64, error) {
	result, err := d.db.Exec(
		`INSERT INTO donations (amount, note, created_at) VALUES (?, ?, ?)`,
		dn.Amount, dn.Note, dn.CreatedAt.Unix(),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DonationTotal returns the running sum of all donation events.
func (d *DB) DonationTotal() (float64, error) {
	var total float64
	err := d.db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM donations`).Scan(&total)
	return total, err
}

// ListDonations returns donation events newest first.
func (d *DB) ListDonations(limit int) ([]domain.Donation, error) {
	rows, err := d.db.Query(
		`SELECT id, amount, note, created_at
		 FROM donations ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var dn domain.Donation
		var createdAt int64
		if err := rows.Scan(&dn.ID, &dn.Amount, &dn.Note, &createdAt); err != nil {
			return nil, err
		}
		dn.CreatedAt = time.Unix(createdAt, 0)
		donations = append(donations, dn)
	}
	return donations, rows.Err()
}

// ─── Notifications ──────────────────────────────────────────────────────────

// InsertNotification creates a new notification.
func (d *DB) InsertNotification(n domain.Notification) (int64, error) {
	result, err := d.db.Exec(
		`INSERT INTO notifications (type, title, body, created_at, shown)
		 VALUES (?, ?, ?, ?, ?)`,
		string(n.Type), n.Title, n.Body, n.CreatedAt.Unix(), n.Shown,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// NotificationCountToday returns how many notifications were created today.
func (d *DB) NotificationCountToday() (int, error) {
	startOfDay := time.Now().Truncate(24 * time.Hour).Unix()
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM notifications WHERE created_at >= ?`, startOfDay,
	).Scan(&count)
	return count, err
}

// ListPendingNotifications returns unshown notifications.
func (d *DB) ListPendingNotifications(limit int) ([]domain.Notification, error) {
	rows, err := d.db.Query(
		`SELECT id, type, title, body, created_at, shown
		 FROM notifications WHERE shown = 0 ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdAt int64
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Body, &createdAt, &n.Shown); err != nil {
			return nil, err
		}
		n.CreatedAt = time.Unix(createdAt, 0)
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

// MarkNotificationShown marks a notification as shown.
func (d *DB) MarkNotificationShown(id int64) error {
	_, err := d.db.Exec(`UPDATE notifications SET shown = 1 WHERE id = ?`, id)
	return err
}
