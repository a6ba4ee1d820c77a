package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/daehokimm/point-service/internal/api/handlers"
	"github.com/daehokimm/point-service/internal/config"
	"github.com/daehokimm/point-service/internal/metrics"
	"github.com/daehokimm/point-service/internal/middleware"
	"github.com/daehokimm/point-service/internal/point"
)

func NewRouter(cfg config.Config, svc *point.Service, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	h := handlers.NewPoint(svc, log)
	r.Route("/point", func(r chi.Router) {
		r.Get("/{id}", h.GetBalance)
		r.Get("/{id}/histories", h.GetHistory)
		r.Patch("/{id}/charge", h.Charge)
		r.Patch("/{id}/use", h.Use)
	})

	return r
}
