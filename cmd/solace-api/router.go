// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/solacehq/solace/cmd/solace-api/handlers"
	"github.com/solacehq/solace/cmd/solace-api/middleware"
	"github.com/solacehq/solace/internal/config"
	"github.com/solacehq/solace/internal/conversation"
	"github.com/solacehq/solace/internal/observability"
	"github.com/solacehq/solace/internal/registry"
	"github.com/solacehq/solace/internal/trust"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config, reg *registry.Registry, eng *trust.Engine, orch *conversation.Orchestrator) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	// Health check (unauthenticated)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"solace"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ready"}`))
	})

	conversationHandler := handlers.NewConversationHandler(logger, orch)
	resourcesHandler := handlers.NewResourcesHandler(logger, reg, eng)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/conversation", conversationHandler.Respond)

		r.Route("/resources", func(r chi.Router) {
			r.Get("/emergency", resourcesHandler.Emergency)
		})

		r.Route("/trust", func(r chi.Router) {
			r.Get("/health", resourcesHandler.TrustHealth)
		})
	})

	return r
}
