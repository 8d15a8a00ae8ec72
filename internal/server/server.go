// Package server exposes the profiling and insight engines over HTTP. The
// endpoints accept a dataset in the request body (CSV or JSON) and return
// the same structures the CLI produces.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"autoviz/internal/config"
)

// New builds the HTTP handler with routing, logging, panic recovery, and
// CORS configured from cfg.
func New(cfg *config.Global) http.Handler {
	h := &handler{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.health)
	r.Post("/api/profile", h.profile)
	r.Post("/api/suggest", h.suggest)
	r.Post("/api/analyze", h.analyze)
	return r
}

// ListenAndServe runs the server on cfg.ServerAddr until the listener fails.
func ListenAndServe(cfg *config.Global) error {
	return http.ListenAndServe(cfg.ServerAddr, New(cfg))
}
