package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	contentHandler "github.com/miguelromero/miguelbot/backend/internal/handler/content"
	conversationHandler "github.com/miguelromero/miguelbot/backend/internal/handler/conversation"
	streamHandler "github.com/miguelromero/miguelbot/backend/internal/handler/stream"
	surfaceHandler "github.com/miguelromero/miguelbot/backend/internal/handler/surface"
	themeHandler "github.com/miguelromero/miguelbot/backend/internal/handler/theme"
	widgetHandler "github.com/miguelromero/miguelbot/backend/internal/handler/widget"
	contentModel "github.com/miguelromero/miguelbot/backend/internal/model/content"
	surfaceModel "github.com/miguelromero/miguelbot/backend/internal/model/surface"
	conversationService "github.com/miguelromero/miguelbot/backend/internal/service/conversation"
	themeService "github.com/miguelromero/miguelbot/backend/internal/service/theme"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(
	surfaces surfaceModel.Store,
	convSvc *conversationService.Service,
	themeSvc *themeService.Service,
	catalog contentModel.Store,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(api chi.Router) {
		surfaceHandler.New(surfaces).RegisterRoutes(api)
		conversationHandler.New(convSvc, surfaces).RegisterRoutes(api)
		streamHandler.New(convSvc).RegisterRoutes(api)
		widgetHandler.New(convSvc).RegisterRoutes(api)
		themeHandler.New(themeSvc).RegisterRoutes(api)
		contentHandler.New(catalog).RegisterRoutes(api)
	})

	return r
}
