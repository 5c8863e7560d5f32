package router

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/metrics"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

// RouteRegistrar mounts a controller's endpoints. userAuth guards customer
// routes and adminAuth guards the admin surface.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router, userAuth, adminAuth func(http.Handler) http.Handler)
}

type Options struct {
	UserAuth       func(http.Handler) http.Handler
	AdminAuth      func(http.Handler) http.Handler
	Metrics        metrics.Collector
	MetricsHandler http.Handler
	AllowedOrigins []string
}

func New(opts Options, registrars ...RouteRegistrar) *chi.Mux {
	collector := opts.Metrics
	if collector == nil {
		collector = metrics.NoOpCollector{}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.InstrumentHandler(collector))

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}
	registerSwaggerRoutes(r)

	adminAuth := opts.AdminAuth
	if adminAuth == nil {
		adminAuth = denyAdmin
	}
	for _, registrar := range registrars {
		if registrar != nil {
			registrar.RegisterRoutes(r, opts.UserAuth, adminAuth)
		}
	}

	return r
}

// denyAdmin stands in when no admin credentials are configured.
func denyAdmin(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(commons.ErrorResponse[struct{}](commons.MessageUnauthorized, "admin authentication is not configured"))
	})
}
