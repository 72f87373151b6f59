// Package metrics provides Prometheus metrics for TableShare:
// counters and gauges for engagement activity, volunteer intake,
// and the donation counter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Engagement ─────────────────────────────────────────────────────────────

// TasksCompleted tracks completed engagement tasks by category.
var TasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tableshare",
	Name:      "tasks_completed_total",
	Help:      "Total completed engagement tasks.",
}, []string{"category"})

// PointsAwarded tracks total points awarded.
var PointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tableshare",
	Name:      "points_awarded_total",
	Help:      "Total engagement points awarded.",
})

// CurrentLevel tracks the profile's current level.
var CurrentLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "tableshare",
	Name:      "current_level",
	Help:      "Current engagement level.",
})

// DayStreak tracks the consecutive-day visit streak.
var DayStreak = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "tableshare",
	Name:      "day_streak",
	Help:      "Consecutive calendar days with a visit.",
})

// ─── Volunteers ─────────────────────────────────────────────────────────────

// VolunteerSignups tracks accepted volunteer submissions.
var VolunteerSignups = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tableshare",
	Name:      "volunteer_signups_total",
	Help:      "Total accepted volunteer signups.",
})

// VolunteerRejected tracks submissions rejected by validation.
var VolunteerRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tableshare",
	Name:      "volunteer_rejected_total",
	Help:      "Volunteer submissions rejected by validation.",
}, []string{"reason"})

// ─── Donations ──────────────────────────────────────────────────────────────

// DonationEvents tracks appended donation events.
var DonationEvents = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tableshare",
	Name:      "donation_events_total",
	Help:      "Total donation events recorded.",
})

// DonationTotal tracks the running donation sum in dollars.
var DonationTotal = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "tableshare",
	Name:      "donation_total_dollars",
	Help:      "Running total of the donation counter.",
})

// FeedSubscribers tracks connected live-feed (SSE) clients.
var FeedSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "tableshare",
	Name:      "feed_subscribers",
	Help:      "Connected donation live-feed clients.",
})
