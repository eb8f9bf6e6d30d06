package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/journalapp/journal/internal/metrics"
	"github.com/journalapp/journal/internal/middleware"
	"github.com/journalapp/journal/internal/service"
)

// RouterConfig holds everything needed to assemble the HTTP API.
type RouterConfig struct {
	Logger   *slog.Logger
	Version  string
	Accounts *service.AccountService
	Entries  *service.EntryService
	Verifier middleware.TokenVerifier
	DB       HealthChecker

	IsDevelopment      bool
	CORSAllowedOrigins []string
	MaxRequestBodySize int64

	// Recorder observes every request. Nil disables request metrics.
	Recorder metrics.Recorder
	// MetricsExporter is mounted on /metrics when set.
	MetricsExporter http.Handler
}

// NewRouter configures the chi router with all routes and middleware.
// Entry routes sit behind the auth gate only when entries are scoped.
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := New(cfg.Version)
	healthHandler := NewHealthHandler(cfg.DB)
	authHandler := NewAuthHandler(cfg.Accounts, logger)
	entryHandler := NewEntryHandler(cfg.Entries, logger)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins

	maxBody := cfg.MaxRequestBodySize
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	if cfg.Recorder != nil {
		r.Use(middleware.Metrics(cfg.Recorder))
	}
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment}))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(maxBody))

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	if cfg.MetricsExporter != nil {
		r.Get("/metrics", NewMetricsHandler(cfg.MetricsExporter).Metrics)
	}
	r.Get("/", h.Hello)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up", authHandler.SignUp)
			r.Post("/sign-in", authHandler.SignIn)
		})

		r.Route("/entries", func(r chi.Router) {
			if cfg.Entries.Scoped() {
				r.Use(middleware.Auth(middleware.AuthConfig{
					Logger:   logger,
					Verifier: cfg.Verifier,
				}))
			}
			r.Get("/", entryHandler.List)
			r.Post("/", entryHandler.Create)
			r.Get("/{entryId}", entryHandler.Get)
			r.Put("/{entryId}", entryHandler.Update)
			r.Delete("/{entryId}", entryHandler.Delete)
		})
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
