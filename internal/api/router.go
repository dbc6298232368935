// Package api exposes ranking over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the HTTP handler. pub and m may be nil.
func NewRouter(cfg *contract.Config, mgr contract.CacheManager, pub contract.Publisher, m *Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger, m))

	rank := NewRankHandler(cfg, mgr, pub, m, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/rank", rank.Rank)
		r.Post("/resize", rank.Resize)
		r.Get("/scale", rank.Scale)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	return r
}
