package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	projecthandler "github.com/Jamolkhon5/projassist/internal/ai/project/handler"
	"github.com/Jamolkhon5/projassist/internal/ai/project/service"
	"github.com/Jamolkhon5/projassist/internal/apierror"
	"github.com/Jamolkhon5/projassist/internal/auth"
	"github.com/Jamolkhon5/projassist/internal/metrics"
	"github.com/Jamolkhon5/projassist/internal/repository"
)

// RouterOptions collects everything the HTTP API is built from.
type RouterOptions struct {
	Assistant      *service.ProjectAssistant
	Metrics        *metrics.Metrics
	Integrations   *repository.Integrations
	Issuer         *auth.Issuer // nil disables authentication
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the API. With an issuer, everything except / and
// /api/auth requires a bearer token, and the integration endpoints are mounted.
func NewRouter(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(apierror.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	m := opts.Metrics
	if m == nil {
		m = metrics.NewMetrics()
	}
	h := NewHandler(opts.Issuer, m)
	assistant := projecthandler.NewProjectAssistantHandler(opts.Assistant, m)

	r.Get("/", h.Root)
	if opts.Issuer == nil {
		r.Get("/api/stats", h.Stats)
		assistant.RegisterRoutes(r)
		return r
	}

	r.Post("/api/auth", h.Auth)
	r.Group(func(r chi.Router) {
		r.Use(opts.Issuer.Middleware)
		r.Get("/api/stats", h.Stats)
		assistant.RegisterRoutes(r)
		integrations := opts.Integrations
		if integrations == nil {
			integrations = repository.NewIntegrations()
		}
		projecthandler.NewIntegrationHandler(integrations).RegisterRoutes(r)
	})
	return r
}
