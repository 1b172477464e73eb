package api

import (
	"net/http"

	"github.com/dalemusser/technavigator/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Routes returns the /api subrouter. allowedOrigins feeds the CORS policy;
// the API is read-only so only GET and preflight requests are allowed. A nil
// limiter disables per-client rate limiting.
func Routes(h *Handler, allowedOrigins []string, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	// CORS runs first: preflights end there and rate-limited responses
	// still carry the allow-origin header.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if limiter != nil {
		r.Use(ratelimit.Middleware(limiter, h.Log))
	}

	r.Get("/domains", h.ListDomains)
	r.Get("/domains/{id}", h.GetDomain)
	r.Get("/roadmap", h.Roadmap)
	r.Get("/summary", h.Summary)
	return r
}
