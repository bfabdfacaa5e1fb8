package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericrcwu001/Oper/internal/api/router"
	appconfig "github.com/ericrcwu001/Oper/internal/config"
	"github.com/ericrcwu001/Oper/internal/observability/metrics"
	"github.com/ericrcwu001/Oper/internal/scenario"
	"github.com/ericrcwu001/Oper/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
)

func main() {
	// Load .env before reading configuration (dev convenience; no-op when
	// the file is absent).
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.NewForEnv(cfg.LogLevel, cfg.Env)
	logger.Info("starting oper API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	scenarioMetrics := metrics.NewScenarioMetrics(nil)

	var generator *scenario.Generator
	if cfg.OpenAIAPIKey != "" {
		client := openai.NewClient(cfg.OpenAIAPIKey)
		generator = scenario.NewGenerator(client, cfg.OpenAIModel, logger,
			scenario.WithTemperature(float32(cfg.OpenAITemperature)),
			scenario.WithCallTimeout(cfg.OpenAITimeout),
		)
	} else {
		logger.Warn("OPENAI_API_KEY is not set; scenario generation requests will fail")
	}

	var store *scenario.Store
	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		store = scenario.NewStore(redis.NewClient(opts), cfg.ScenarioTTL)
	} else {
		logger.Info("REDIS_ADDR is not set; scenario lookup endpoints are disabled")
	}

	service := scenario.NewService(generator, store, scenarioMetrics, logger)
	scenarioHandler := scenario.NewHandler(service, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		ScenarioHandler:    scenarioHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		GenerateRateLimit:  cfg.GenerateRateLimit,
		GenerateRateBurst:  cfg.GenerateRateBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
