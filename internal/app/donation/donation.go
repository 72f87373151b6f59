// Package donation implements the append-only donation ledger behind
// the site's live counter. Every recorded event updates the running
// total and fans out to in-process subscribers; slow subscribers drop
// events instead of blocking the writer.
package donation

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tableshare/tableshare/internal/domain"
	"github.com/tableshare/tableshare/internal/infra/metrics"
	"github.com/tableshare/tableshare/internal/infra/sqlite"
)

// Event is what subscribers receive after each insert.
type Event struct {
	Donation domain.Donation `json:"donation"`
	Total    float64         `json:"total"`
}

// Service manages the donation ledger.
type Service struct {
	db *sqlite.DB

	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

// NewService creates a donation service.
func NewService(db *sqlite.DB) *Service {
	return &Service{db: db, subs: make(map[int]chan Event)}
}

// Record appends a donation event and broadcasts the new total.
func (s *Service) Record(amount float64, note string) (domain.Donation, error) {
	if amount <= 0 {
		return domain.Donation{}, fmt.Errorf("donation amount must be positive, got %v", amount)
	}

	d := domain.Donation{Amount: amount, Note: note, CreatedAt: time.Now()}
	id, err := s.db.InsertDonation(d)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("insert donation: %w", err)
	}
	d.ID = id

	total, err := s.db.DonationTotal()
	if err != nil {
		return domain.Donation{}, fmt.Errorf("donation total: %w", err)
	}

	metrics.DonationEvents.Inc()
	metrics.DonationTotal.Set(total)
	s.broadcast(Event{Donation: d, Total: total})
	return d, nil
}

// Pledge implements the engagement engine's pledge sink. Failures are
// logged and swallowed so a missed mirror never blocks a level-up.
func (s *Service) Pledge(amount float64, note string) {
	if _, err := s.Record(amount, note); err != nil {
		log.Warn().Err(err).Msg("donation: mirror pledge")
	}
}

// Total returns the running sum of all donations.
func (s *Service) Total() (float64, error) {
	return s.db.DonationTotal()
}

// Recent returns the latest donation events.
func (s *Service) Recent(limit int) ([]domain.Donation, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.db.ListDonations(limit)
}

// Subscribe registers for insert events. The returned cancel func must
// be called when the consumer goes away.
func (s *Service) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Event, 8)
	s.subs[id] = ch
	metrics.FeedSubscribers.Set(float64(len(s.subs)))

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
			metrics.FeedSubscribers.Set(float64(len(s.subs)))
		}
	}
	return ch, cancel
}

func (s *Service) broadcast(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber is behind; it will resync from the next event.
		}
	}
}
