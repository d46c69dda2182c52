package widget

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/miguelromero/miguelbot/backend/internal/model/chat"
	conversationService "github.com/miguelromero/miguelbot/backend/internal/service/conversation"
)

// Handler is the websocket transport for the floating widget. The socket
// lifetime is the surface lifetime: opening it attaches the session (arming
// the one-shot delayed greeting), closing it detaches and cancels pending
// timers while leaving the transcript in place.
type Handler struct {
	convSvc  *conversationService.Service
	upgrader websocket.Upgrader
}

// New creates a widget websocket handler.
func New(convSvc *conversationService.Service) *Handler {
	return &Handler{
		convSvc: convSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type snapshotFrame struct {
	Type      string         `json:"type"`
	Messages  []chat.Message `json:"messages"`
	Composing bool           `json:"composing"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "sessionID is required", http.StatusBadRequest)
		return
	}

	if _, err := h.convSvc.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[widget] upgrade failed for session=%s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	events, cancel, err := h.convSvc.Subscribe(r.Context(), sessionID)
	if err != nil {
		return
	}
	defer cancel()
	defer func() {
		if err := h.convSvc.Detach(context.Background(), sessionID); err != nil {
			log.Printf("[widget] detach failed for session=%s: %v", sessionID, err)
		}
	}()

	messages, err := h.convSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		return
	}
	composing, _ := h.convSvc.Composing(r.Context(), sessionID)
	if err := conn.WriteJSON(snapshotFrame{Type: "snapshot", Messages: messages, Composing: composing}); err != nil {
		return
	}

	if err := h.convSvc.Attach(r.Context(), sessionID); err != nil {
		log.Printf("[widget] attach failed for session=%s: %v", sessionID, err)
	}

	done := make(chan struct{})
	go h.writeEvents(conn, events, done)

	log.Printf("[widget] socket open for session=%s", sessionID)
	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			break
		}

		switch frame.Type {
		case "submit":
			if err := h.convSvc.Submit(r.Context(), sessionID, frame.Content); err != nil {
				log.Printf("[widget] submit failed for session=%s: %v", sessionID, err)
			}
		default:
			// Unknown frame types are ignored so clients can evolve.
		}
	}

	close(done)
	log.Printf("[widget] socket closed for session=%s", sessionID)
}

func (h *Handler) writeEvents(conn *websocket.Conn, events <-chan conversationService.Event, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(ev); err != nil {
				conn.Close()
				return
			}
		}
	}
}
