package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a use case to execute business logic and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.AdUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. metrics, when
// not nil, is served on /metrics.
func NewHandler(svc port.AdUseCase, logger *slog.Logger, metrics http.Handler) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/ads", func(r chi.Router) {
			r.Get("/get_for_zone", h.handleGetForZone)
			r.Post("/track_adblock", h.handleTrackAdblock)
			r.Post("/", h.handleCreateAd)
			r.Route("/{id}", func(r chi.Router) {
				r.Post("/track_impression", h.handleTrackImpression)
				r.Post("/track_click", h.handleTrackClick)
				r.Post("/track_conversion", h.handleTrackConversion)
			})
		})
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Post("/pause", h.handleCampaignTransition(domain.StatusPaused))
			r.Post("/resume", h.handleCampaignTransition(domain.StatusActive))
			r.Post("/status", h.handleCampaignStatus)
		})
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
