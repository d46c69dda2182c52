package surface

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miguelromero/miguelbot/backend/internal/model/surface"
	"github.com/miguelromero/miguelbot/backend/pkg/utils"
)

// Handler serves the configured conversation surfaces.
type Handler struct {
	surfaces surface.Store
}

// New creates a surface handler.
func New(surfaces surface.Store) *Handler {
	return &Handler{surfaces: surfaces}
}

// RegisterRoutes mounts the surface routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/surfaces", h.handleListSurfaces)
}

func (h *Handler) handleListSurfaces(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.surfaces.List())
}
