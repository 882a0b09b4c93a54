package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/starford/miti/internal/dateservice"
)

// RouterOption configures optional parts of the API router.
type RouterOption func(*routerOptions)

type routerOptions struct {
	limiter *rate.Limiter
	metrics *Metrics
}

// WithRateLimit limits the API with limiter.
func WithRateLimit(limiter *rate.Limiter) RouterOption {
	return func(o *routerOptions) {
		o.limiter = limiter
	}
}

// WithMetrics counts conversions on m. Request metrics are recorded by
// m.Middleware on the root router.
func WithMetrics(m *Metrics) RouterOption {
	return func(o *routerOptions) {
		o.metrics = m
	}
}

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *dateservice.Service, authEnabled bool, token string, sseHandler http.Handler, opts ...RouterOption) chi.Router {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}
	h := NewHandler(svc, o.metrics)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))
	r.Use(RateLimitMiddleware(o.limiter))

	r.Get("/today", h.Today)
	r.Get("/range", h.Range)

	// Conversions.
	r.Get("/convert/to-ad", h.ToAD)
	r.Get("/convert/to-bs", h.ToBS)

	// Single dates.
	r.Get("/dates/{date}", h.GetDate)
	r.Get("/dates/{date}/format", h.FormatDate)
	r.Post("/dates/{date}/shift", h.ShiftDate)

	// Month pages.
	r.Get("/calendar/{kind}/{year}/{month}", h.Calendar)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
