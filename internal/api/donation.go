package api

import (
	"encoding/json"
	"net/http"
)

// --- POST /api/donations ---

type donationRequest struct {
	Amount float64 `json:"amount"`
	Note   string  `json:"note,omitempty"`
}

func (s *Server) handleDonationRecord(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := s.donations.Record(req.Amount, req.Note)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

// --- GET /api/donations/total ---

func (s *Server) handleDonationTotal(w http.ResponseWriter, r *http.Request) {
	total, err := s.donations.Total()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": total})
}

// --- GET /api/donations/live (SSE) ---
// Streams the running total: one event on connect, then one per insert.

func (s *Server) handleDonationLive(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	events, cancel := s.donations.Subscribe()
	defer cancel()

	// Initial snapshot so the counter renders immediately.
	if total, err := s.donations.Total(); err == nil {
		writeSSE(w, map[string]any{"total": total})
		flusher.Flush()
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-events:
			if !open {
				return
			}
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	w.Write([]byte("data: "))
	w.Write(raw)
	w.Write([]byte("\n\n"))
}
