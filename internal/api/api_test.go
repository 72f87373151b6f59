package api_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tableshare/tableshare/internal/api"
	"github.com/tableshare/tableshare/internal/app/donation"
	"github.com/tableshare/tableshare/internal/app/engagement"
	"github.com/tableshare/tableshare/internal/app/volunteer"
	"github.com/tableshare/tableshare/internal/infra/catalog"
	"github.com/tableshare/tableshare/internal/infra/sqlite"
)

func testServer(t *testing.T) *api.Server {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	notify := engagement.NewNotificationService(db)
	donations := donation.NewService(db)
	engine := engagement.NewEngine(db, notify, donations)
	volunteers := volunteer.NewService(db)

	srv := api.NewServer(engine, notify, volunteers, donations)
	srv.SetSiteURL("https://tableshare.example.org")
	return srv
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		json.Unmarshal(rec.Body.Bytes(), &out)
	}
	return rec, out
}

func TestHealth(t *testing.T) {
	h := testServer(t).Handler()
	rec, body := doJSON(t, h, "GET", "/health", nil)
	if rec.Code != http.StatusOK || body["status"] != "ok" {
		t.Errorf("got %d %v", rec.Code, body)
	}
}

func TestSummary_FirstVisit(t *testing.T) {
	h := testServer(t).Handler()
	rec, body := doJSON(t, h, "GET", "/api/engagement/summary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	if body["current_level"] != float64(1) {
		t.Errorf("expected level 1, got %v", body["current_level"])
	}
	if body["day_streak"] != float64(1) {
		t.Errorf("expected streak 1 on first visit, got %v", body["day_streak"])
	}
}

func TestCompleteTask(t *testing.T) {
	h := testServer(t).Handler()

	rec, body := doJSON(t, h, "POST", "/api/engagement/tasks/first-visit/complete", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	if body["completed"] != true {
		t.Errorf("expected completed=true, got %v", body["completed"])
	}
	sum := body["summary"].(map[string]any)
	if sum["total_points"] != float64(10) {
		t.Errorf("expected 10 points, got %v", sum["total_points"])
	}

	// One-shot: the second attempt is a no-op.
	_, body = doJSON(t, h, "POST", "/api/engagement/tasks/first-visit/complete", nil)
	if body["completed"] != false {
		t.Errorf("expected completed=false on repeat, got %v", body["completed"])
	}
}

func TestCompleteTask_UnknownID(t *testing.T) {
	h := testServer(t).Handler()
	rec, body := doJSON(t, h, "POST", "/api/engagement/tasks/not-a-task/complete", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	if body["completed"] != false {
		t.Errorf("unknown task must report completed=false, got %v", body["completed"])
	}
}

func TestTasks_AllFlag(t *testing.T) {
	h := testServer(t).Handler()

	_, body := doJSON(t, h, "GET", "/api/engagement/tasks?all=true", nil)
	all := body["tasks"].([]any)
	if len(all) != len(engagement.Catalog()) {
		t.Errorf("expected full catalog, got %d tasks", len(all))
	}

	_, body = doJSON(t, h, "GET", "/api/engagement/tasks", nil)
	daily := body["tasks"].([]any)
	if len(daily) == 0 || len(daily) >= len(all) {
		t.Errorf("expected a strict subset for the daily rotation, got %d of %d", len(daily), len(all))
	}
}

func TestVolunteerSubmit(t *testing.T) {
	h := testServer(t).Handler()

	rec, body := doJSON(t, h, "POST", "/api/volunteers/", map[string]any{
		"name":     "Ada Martin",
		"email":    "ada@example.org",
		"interest": "delivery",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d: %v", rec.Code, body)
	}
	if body["status"] != "pending" {
		t.Errorf("expected pending, got %v", body["status"])
	}

	// Submitting awards the one-shot signup task.
	_, sum := doJSON(t, h, "GET", "/api/engagement/summary", nil)
	if sum["total_points"] != float64(100) {
		t.Errorf("expected 100 points after signup, got %v", sum["total_points"])
	}

	_, list := doJSON(t, h, "GET", "/api/volunteers/", nil)
	if vols := list["volunteers"].([]any); len(vols) != 1 {
		t.Errorf("expected one signup listed, got %d", len(vols))
	}
}

func TestVolunteerSubmit_Invalid(t *testing.T) {
	h := testServer(t).Handler()
	rec, body := doJSON(t, h, "POST", "/api/volunteers/", map[string]any{
		"name":     "Ada",
		"email":    "not-an-email",
		"interest": "delivery",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got %d: %v", rec.Code, body)
	}
}

func TestDonations(t *testing.T) {
	h := testServer(t).Handler()

	rec, _ := doJSON(t, h, "POST", "/api/donations/", map[string]any{"amount": 25.0, "note": "test gift"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d", rec.Code)
	}

	_, body := doJSON(t, h, "GET", "/api/donations/total", nil)
	if body["total"] != float64(25) {
		t.Errorf("expected total 25, got %v", body["total"])
	}

	rec, _ = doJSON(t, h, "POST", "/api/donations/", map[string]any{"amount": -1.0})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative amount, got %d", rec.Code)
	}
}

func TestDonationLive_SSE(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/donations/live")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}

	reader := bufio.NewReader(resp.Body)
	readEvent := func() map[string]any {
		t.Helper()
		deadline := time.After(5 * time.Second)
		lines := make(chan string, 1)
		go func() {
			for {
				line, err := reader.ReadString('\n')
				if err != nil {
					return
				}
				if strings.HasPrefix(line, "data: ") {
					lines <- strings.TrimSpace(strings.TrimPrefix(line, "data: "))
					return
				}
			}
		}()
		select {
		case raw := <-lines:
			var ev map[string]any
			if err := json.Unmarshal([]byte(raw), &ev); err != nil {
				t.Fatalf("bad event %q: %v", raw, err)
			}
			return ev
		case <-deadline:
			t.Fatal("timed out waiting for event")
			return nil
		}
	}

	// Snapshot on connect.
	if ev := readEvent(); ev["total"] != float64(0) {
		t.Errorf("expected zero snapshot, got %v", ev)
	}

	body := strings.NewReader(`{"amount": 40}`)
	if resp2, err := http.Post(ts.URL+"/api/donations/", "application/json", body); err != nil {
		t.Fatalf("post donation: %v", err)
	} else {
		resp2.Body.Close()
	}

	if ev := readEvent(); ev["total"] != float64(40) {
		t.Errorf("expected live total 40, got %v", ev)
	}
}

func TestContentEndpoints(t *testing.T) {
	h := testServer(t).Handler()

	_, body := doJSON(t, h, "GET", "/api/organizations", nil)
	if orgs := body["organizations"].([]any); len(orgs) != len(catalog.Organizations) {
		t.Errorf("expected %d organizations, got %d", len(catalog.Organizations), len(orgs))
	}

	_, body = doJSON(t, h, "GET", "/api/facts", nil)
	if facts := body["facts"].([]any); len(facts) == 0 {
		t.Error("expected facts")
	}

	_, body = doJSON(t, h, "GET", "/api/quiz", nil)
	questions := body["questions"].([]any)
	if len(questions) == 0 {
		t.Fatal("expected quiz questions")
	}
	// Answer indexes must not leak.
	if _, leaked := questions[0].(map[string]any)["answer"]; leaked {
		t.Error("answer index leaked in quiz payload")
	}
}

func TestQuizAnswer(t *testing.T) {
	h := testServer(t).Handler()

	q := catalog.QuizQuestions[0]
	path := fmt.Sprintf("/api/quiz/%s/answer", q.ID)

	rec, body := doJSON(t, h, "POST", path, map[string]any{"choice": q.Answer})
	if rec.Code != http.StatusOK || body["correct"] != true {
		t.Errorf("expected correct answer, got %d %v", rec.Code, body)
	}
	if body["completed"] != true {
		t.Errorf("first correct answer should complete the quiz task, got %v", body["completed"])
	}

	// Quiz task is on cooldown; a second correct answer still grades.
	_, body = doJSON(t, h, "POST", path, map[string]any{"choice": q.Answer})
	if body["correct"] != true || body["completed"] != false {
		t.Errorf("expected correct but not completed, got %v", body)
	}

	wrong := (q.Answer + 1) % len(q.Choices)
	_, body = doJSON(t, h, "POST", path, map[string]any{"choice": wrong})
	if body["correct"] != false {
		t.Errorf("expected incorrect, got %v", body)
	}

	rec, _ = doJSON(t, h, "POST", "/api/quiz/ghost/answer", map[string]any{"choice": 0})
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown question, got %d", rec.Code)
	}
}

func TestShareQR(t *testing.T) {
	h := testServer(t).Handler()

	req := httptest.NewRequest("GET", "/api/share/qr?size=128", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("unexpected content type %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("expected PNG payload")
	}

	rec, _ = doJSON(t, h, "GET", "/api/share/qr?size=64", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for undersized QR, got %d", rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := testServer(t).Handler()
	req := httptest.NewRequest("OPTIONS", "/api/engagement/summary", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS headers on preflight")
	}
}
