package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miguelromero/miguelbot/backend/internal/model/content"
	"github.com/miguelromero/miguelbot/backend/pkg/utils"
)

// Handler serves the static portfolio catalog.
type Handler struct {
	catalog content.Store
}

// New creates a content handler.
func New(catalog content.Store) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes mounts the catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/projects", h.handleProjects)
	r.Get("/experience", h.handleExperience)
	r.Get("/gallery", h.handleGallery)
	r.Get("/skills", h.handleSkills)
	r.Get("/skills/export", h.handleSkillsExport)
}

func (h *Handler) handleProjects(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalog.Projects())
}

func (h *Handler) handleExperience(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalog.Experiences())
}

func (h *Handler) handleGallery(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalog.Gallery())
}

func (h *Handler) handleSkills(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalog.Skills())
}

// handleSkillsExport renders the skill set as one of the code-styled text
// blocks the skills page displays. format is json, python or sql.
func (h *Handler) handleSkillsExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	text, err := ExportSkills(h.catalog.Skills(), format)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}
