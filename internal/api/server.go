// Package api provides the TableShare HTTP server: the engagement
// engine's REST surface, volunteer intake, the donation counter with
// its live SSE feed, and the static content catalogs the site renders.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tableshare/tableshare/internal/app/donation"
	"github.com/tableshare/tableshare/internal/app/engagement"
	"github.com/tableshare/tableshare/internal/app/volunteer"
)

// Server is the TableShare HTTP API server.
type Server struct {
	engine     *engagement.Engine
	notify     *engagement.NotificationService
	volunteers *volunteer.Service
	donations  *donation.Service

	siteURL        string
	version        string
	metricsEnabled bool
	limiter        *rateLimiter
}

// NewServer creates a new API server.
func NewServer(engine *engagement.Engine, notify *engagement.NotificationService,
	volunteers *volunteer.Service, donations *donation.Service) *Server {
	return &Server{
		engine:     engine,
		notify:     notify,
		volunteers: volunteers,
		donations:  donations,
		limiter:    newRateLimiter(1, 5), // public form: 1 req/s, burst 5 per IP
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetSiteURL sets the public site URL used by the QR share endpoint.
func (s *Server) SetSiteURL(u string) { s.siteURL = u }

// SetVersion sets the version reported by /api/version.
func (s *Server) SetVersion(v string) { s.version = v }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "TableShare is running"})
	})
	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		v := s.version
		if v == "" {
			v = "dev"
		}
		writeJSON(w, http.StatusOK, map[string]string{"version": v})
	})

	// Engagement engine
	r.Route("/api/engagement", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/level", s.handleLevel)
		r.Get("/streak", s.handleStreak)
		r.Get("/tasks", s.handleTasks)
		r.Post("/tasks/refresh", s.handleRefreshTasks)
		r.Post("/tasks/{id}/complete", s.handleCompleteTask)
		r.Get("/notifications", s.handleNotifications)
		r.Post("/notifications/{id}/shown", s.handleNotificationShown)
	})

	// Volunteer intake
	r.Route("/api/volunteers", func(r chi.Router) {
		r.With(s.limiter.limit).Post("/", s.handleVolunteerSubmit)
		r.Get("/", s.handleVolunteerList)
	})

	// Donation counter
	r.Route("/api/donations", func(r chi.Router) {
		r.Post("/", s.handleDonationRecord)
		r.Get("/total", s.handleDonationTotal)
		r.Get("/live", s.handleDonationLive)
	})

	// Site content
	r.Get("/api/organizations", s.handleOrganizations)
	r.Get("/api/facts", s.handleFacts)
	r.Get("/api/quiz", s.handleQuiz)
	r.Post("/api/quiz/{id}/answer", s.handleQuizAnswer)
	r.Get("/api/share/qr", s.handleShareQR)

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers so the site can call the API
// directly from the browser.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
