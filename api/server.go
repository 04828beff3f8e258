package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/mmrivera/portfolio-backend/auth"
	"github.com/mmrivera/portfolio-backend/config"
	"github.com/mmrivera/portfolio-backend/database"
	"github.com/mmrivera/portfolio-backend/services"
	"github.com/mmrivera/portfolio-backend/storage"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// NewServer wires the router and HTTP server from the injected configuration
// and collaborators.
func NewServer(cfg *config.Config, db database.Database, files storage.FileStore, authService *auth.Service, mailer *services.Mailer) (Server, error) {
	startupTime := time.Now()

	router := newRouter(cfg, db, files, authService, mailer, startupTime)

	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

func newRouter(cfg *config.Config, db database.Database, files storage.FileStore, authService *auth.Service, mailer *services.Mailer, startupTime time.Time) *chi.Mux {
	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AcceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handlers := initializeHandlers(db, files, authService, mailer, startupTime)
	authMiddleware := newAuthMiddleware(authService)

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefulCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefulCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
