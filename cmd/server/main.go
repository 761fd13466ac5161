// Command server runs the Bedrock prompt service as a standalone HTTP server.
//
// Purpose:
//   Container and local-development deployment of the same request handler
//   the Lambda entrypoint uses. Exposes the generate endpoint plus health
//   and metrics endpoints, with graceful shutdown on SIGINT/SIGTERM.
//
// Key Responsibilities:
//   - Load configuration and initialize the logger and Bedrock client once
//   - Register POST /generate and OPTIONS /generate
//   - Register health/readiness endpoints (/v1/status/*) and /metrics
//   - Handle graceful shutdown
//
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/johngiles12345/BedrockMicroservice/internal/api/public"
	"github.com/johngiles12345/BedrockMicroservice/internal/bedrock"
	"github.com/johngiles12345/BedrockMicroservice/internal/config"
	"github.com/johngiles12345/BedrockMicroservice/internal/logging"
)

// Build metadata, injected via -ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	ctx := context.Background()

	cfg := config.MustLoad()

	logger := logging.MustNew(logging.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		LogLevel:    cfg.LogLevel,
	})
	defer func() { _ = logger.Sync() }()

	logger.Info("starting bedrock prompt service",
		zap.String("environment", cfg.Environment),
		zap.String("model_id", cfg.ModelID),
		zap.String("region", cfg.Region),
		zap.Int("port", cfg.HTTPPort),
	)

	client, err := bedrock.New(ctx, cfg, logger.Logger)
	if err != nil {
		logger.Fatal("failed to initialize bedrock client", zap.Error(err))
	}

	handler := public.NewHandler(cfg, client, logger)
	statusHandlers := public.NewStatusHandlers(client, public.BuildMetadata{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
	})

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/v1/status/healthz", statusHandlers.HandleHealthz)
	router.Get("/v1/status/readyz", statusHandlers.HandleReadyz)
	router.Handle("/metrics", promhttp.Handler())

	router.Post("/generate", handler.ServeHTTP)
	router.Options("/generate", handler.ServeHTTP)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()
	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}
