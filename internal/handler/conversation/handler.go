package conversation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miguelromero/miguelbot/backend/internal/model/surface"
	conversationService "github.com/miguelromero/miguelbot/backend/internal/service/conversation"
	"github.com/miguelromero/miguelbot/backend/pkg/utils"
)

// Handler exposes the conversation store over REST.
type Handler struct {
	convSvc  *conversationService.Service
	surfaces surface.Store
}

// New creates a conversation handler.
func New(convSvc *conversationService.Service, surfaces surface.Store) *Handler {
	return &Handler{
		convSvc:  convSvc,
		surfaces: surfaces,
	}
}

// RegisterRoutes mounts the conversation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Delete("/session/{sessionID}", h.handleResetSession)
	r.Post("/messages", h.handleSubmitMessage)
	r.Get("/transcript/{sessionID}", h.handleTranscript)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SurfaceID string `json:"surfaceId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.SurfaceID == "" {
		utils.RespondError(w, http.StatusBadRequest, "surfaceId is required")
		return
	}

	if _, ok := h.surfaces.FindByID(payload.SurfaceID); !ok {
		utils.RespondError(w, http.StatusBadRequest, "surface not found")
		return
	}

	session, err := h.convSvc.CreateSession(r.Context(), payload.SurfaceID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Content   string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.convSvc.Submit(r.Context(), payload.SessionID, payload.Content); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, conversationService.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.convSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	composing, err := h.convSvc.Composing(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"messages":  messages,
		"composing": composing,
	})
}

func (h *Handler) handleResetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.convSvc.Reset(r.Context(), sessionID); err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
