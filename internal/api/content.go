package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/tableshare/tableshare/internal/infra/catalog"
)

// --- GET /api/organizations ---

func (s *Server) handleOrganizations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"organizations": catalog.Organizations})
}

// --- GET /api/facts ---

func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"facts": catalog.Facts})
}

// --- GET /api/quiz ---
// Answer indexes never leave the server; grading goes through
// POST /api/quiz/{id}/answer.

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"questions": catalog.QuizQuestions})
}

// --- POST /api/quiz/{id}/answer ---

type quizAnswerRequest struct {
	Choice int `json:"choice"`
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := catalog.FindQuizQuestion(id)
	if q == nil {
		writeError(w, http.StatusNotFound, "unknown question")
		return
	}

	var req quizAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	correct := catalog.CheckAnswer(id, req.Choice)
	completed := false
	if correct {
		// A correct answer counts toward the daily quiz task; the
		// engine's cooldown decides whether it awards points.
		completed = s.engine.CompleteTask("daily-quiz")
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"correct":     correct,
		"completed":   completed,
		"explanation": q.Explanation,
	})
}

// --- GET /api/share/qr ---
// PNG QR code of the public site URL for flyers and posters.
// Optional ?size= between 128 and 1024 (default 256).

func (s *Server) handleShareQR(w http.ResponseWriter, r *http.Request) {
	if s.siteURL == "" {
		writeError(w, http.StatusNotFound, "site URL not configured")
		return
	}

	size := 256
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 128 || n > 1024 {
			writeError(w, http.StatusBadRequest, "size must be a number between 128 and 1024")
			return
		}
		size = n
	}

	png, err := qrcode.Encode(s.siteURL, qrcode.Medium, size)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
