package stream

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	conversationService "github.com/miguelromero/miguelbot/backend/internal/service/conversation"
	"github.com/miguelromero/miguelbot/backend/pkg/utils"
)

// Handler pushes transcript and composing changes over Server-Sent Events.
// One stream is one open surface: disconnecting detaches the session, which
// cancels any pending reply or greeting timer.
type Handler struct {
	convSvc *conversationService.Service
}

// New creates a stream handler.
func New(convSvc *conversationService.Service) *Handler {
	return &Handler{convSvc: convSvc}
}

// RegisterRoutes mounts the stream route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stream/{sessionID}", h.handleStream)
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	ctx := r.Context()

	events, cancel, err := h.convSvc.Subscribe(ctx, sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	defer cancel()
	// Teardown uses a fresh context: the request context is already done
	// by the time the client has gone away.
	defer func() {
		if err := h.convSvc.Detach(context.Background(), sessionID); err != nil {
			log.Printf("[sse] detach failed for session=%s: %v", sessionID, err)
		}
	}()

	utils.SetupSSEHeaders(w)

	// Snapshot first so the surface can render the accumulated transcript,
	// then arm the delayed greeting if this surface uses one.
	messages, err := h.convSvc.Transcript(ctx, sessionID)
	if err != nil {
		utils.SendSSEChunk(w, flusher, map[string]string{"type": "error", "error": err.Error()})
		return
	}
	composing, _ := h.convSvc.Composing(ctx, sessionID)
	utils.SendSSEEvent(w, flusher, "snapshot", map[string]interface{}{
		"messages":  messages,
		"composing": composing,
	})

	if err := h.convSvc.Attach(ctx, sessionID); err != nil {
		log.Printf("[sse] attach failed for session=%s: %v", sessionID, err)
	}

	log.Printf("[sse] stream open for session=%s", sessionID)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[sse] stream closed for session=%s", sessionID)
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			utils.SendSSEChunk(w, flusher, ev)
		}
	}
}
