package theme

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	themeService "github.com/miguelromero/miguelbot/backend/internal/service/theme"
	"github.com/miguelromero/miguelbot/backend/pkg/utils"
)

// Handler exposes the moonlight mode flag.
type Handler struct {
	themeSvc *themeService.Service
}

// New creates a theme handler.
func New(themeSvc *themeService.Service) *Handler {
	return &Handler{themeSvc: themeSvc}
}

// RegisterRoutes mounts the theme routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/theme", h.handleGetTheme)
	r.Post("/theme/toggle", h.handleToggleTheme)
}

func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"moonlight": h.themeSvc.Enabled()})
}

func (h *Handler) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"moonlight": h.themeSvc.Toggle()})
}
