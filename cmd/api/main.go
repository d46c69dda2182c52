package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/miguelromero/miguelbot/backend/internal/classify"
	"github.com/miguelromero/miguelbot/backend/internal/config"
	"github.com/miguelromero/miguelbot/backend/internal/handler"
	contentModel "github.com/miguelromero/miguelbot/backend/internal/model/content"
	surfaceModel "github.com/miguelromero/miguelbot/backend/internal/model/surface"
	conversationService "github.com/miguelromero/miguelbot/backend/internal/service/conversation"
	themeService "github.com/miguelromero/miguelbot/backend/internal/service/theme"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	surfaces := surfaceModel.NewMemoryStore(surfaceModel.Seed())
	convSvc := conversationService.NewService(surfaces, classify.Rules(), conversationService.Options{
		ReplyDelay: cfg.Chat.ReplyDelay,
		GreetDelay: cfg.Chat.GreetDelay,
	})
	themeSvc := themeService.NewService()
	catalog := contentModel.NewMemoryStore(contentModel.Seed())

	router := handler.NewRouter(surfaces, convSvc, themeSvc, catalog, cfg.CORS.AllowedOrigins)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("MiguelBot backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
