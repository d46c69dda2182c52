package conversation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/miguelromero/miguelbot/backend/internal/classify"
	"github.com/miguelromero/miguelbot/backend/internal/model/chat"
	"github.com/miguelromero/miguelbot/backend/internal/model/surface"
	conversationservice "github.com/miguelromero/miguelbot/backend/internal/service/conversation"
)

func setupRouter() (*chi.Mux, *conversationservice.Service) {
	store := surface.NewMemoryStore(surface.Seed())
	// Long enough that transcript reads in these tests happen while the
	// reply is still pending.
	convSvc := conversationservice.NewService(store, classify.Rules(), conversationservice.Options{
		ReplyDelay: 500 * time.Millisecond,
	})
	handler := New(convSvc, store)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, convSvc
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func createSession(t *testing.T, r http.Handler, surfaceID string) chat.Session {
	t.Helper()
	resp := postJSON(t, r, "/session", map[string]string{"surfaceId": surfaceID})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var session chat.Session
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return session
}

func TestCreateSessionValidSurface(t *testing.T) {
	r, _ := setupRouter()
	session := createSession(t, r, "page")
	if session.SurfaceID != "page" {
		t.Fatalf("unexpected surface id: %s", session.SurfaceID)
	}
}

func TestCreateSessionInvalidSurface(t *testing.T) {
	r, _ := setupRouter()
	resp := postJSON(t, r, "/session", map[string]string{"surfaceId": "non-existent"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCreateSessionMissingSurfaceID(t *testing.T) {
	r, _ := setupRouter()
	resp := postJSON(t, r, "/session", map[string]string{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSubmitMessageFlow(t *testing.T) {
	r, _ := setupRouter()
	session := createSession(t, r, "widget")

	resp := postJSON(t, r, "/messages", map[string]string{
		"sessionId": session.ID,
		"content":   "what are your skills?",
	})
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/transcript/"+session.ID, nil)
	get := httptest.NewRecorder()
	r.ServeHTTP(get, req)
	if get.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.Code)
	}

	var payload struct {
		Messages  []chat.Message `json:"messages"`
		Composing bool           `json:"composing"`
	}
	if err := json.Unmarshal(get.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if len(payload.Messages) != 1 || payload.Messages[0].Sender != chat.SenderUser {
		t.Fatalf("unexpected transcript: %+v", payload.Messages)
	}
	if !payload.Composing {
		t.Fatal("expected composing=true while reply is pending")
	}
}

func TestSubmitMessageUnknownSession(t *testing.T) {
	r, _ := setupRouter()
	resp := postJSON(t, r, "/messages", map[string]string{
		"sessionId": "missing",
		"content":   "hello",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestTranscriptUnknownSession(t *testing.T) {
	r, _ := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/transcript/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestResetSession(t *testing.T) {
	r, _ := setupRouter()
	session := createSession(t, r, "page")

	req := httptest.NewRequest(http.MethodDelete, "/session/"+session.ID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	get := httptest.NewRequest(http.MethodGet, "/transcript/"+session.ID, nil)
	check := httptest.NewRecorder()
	r.ServeHTTP(check, get)

	var payload struct {
		Messages []chat.Message `json:"messages"`
	}
	if err := json.Unmarshal(check.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if len(payload.Messages) != 0 {
		t.Fatalf("expected empty transcript after reset, got %d", len(payload.Messages))
	}
}
