package router

import (
	"net/http"

	httpmiddleware "github.com/ericrcwu001/Oper/internal/http/middleware"
	"github.com/ericrcwu001/Oper/internal/scenario"
	"github.com/ericrcwu001/Oper/pkg/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	ScenarioHandler    *scenario.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Per-IP limit applied to POST /api/scenarios/generate. Zero disables it.
	GenerateRateLimit float64
	GenerateRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.ScenarioHandler.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/scenarios", func(r chi.Router) {
		if cfg.GenerateRateLimit > 0 {
			r.With(httpmiddleware.RateLimit(cfg.GenerateRateLimit, cfg.GenerateRateBurst)).
				Post("/generate", cfg.ScenarioHandler.Generate)
		} else {
			r.Post("/generate", cfg.ScenarioHandler.Generate)
		}
		r.Post("/prompt", cfg.ScenarioHandler.ComposePrompt)
		r.Get("/{scenarioID}", cfg.ScenarioHandler.GetScenario)
		r.Get("/{scenarioID}/prompt", cfg.ScenarioHandler.AgentPrompt)
	})

	return r
}
