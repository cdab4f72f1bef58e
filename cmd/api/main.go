package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soheilhy/cmux"

	"github.com/nyashahama/wellbeing-risk-engine/internal/api"
	"github.com/nyashahama/wellbeing-risk-engine/internal/chat"
	"github.com/nyashahama/wellbeing-risk-engine/internal/config"
	"github.com/nyashahama/wellbeing-risk-engine/internal/grpcapi"
	"github.com/nyashahama/wellbeing-risk-engine/internal/inference"
	"github.com/nyashahama/wellbeing-risk-engine/internal/instrument"
	"github.com/nyashahama/wellbeing-risk-engine/internal/logging"
	"github.com/nyashahama/wellbeing-risk-engine/internal/metrics"
	"github.com/nyashahama/wellbeing-risk-engine/internal/telemetry"
)

func main() {
	// ── Config ────────────────────────────────────────────────────────────────
	// Loaded before the logger, which is built from it. A config error is
	// reported through a plain JSON logger.
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("fatal", "error", fmt.Errorf("config: %w", err))
		os.Exit(1)
	}

	logger := logging.New(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("config loaded", "env", cfg.Env, "port", cfg.Port)

	// ── Instruments ───────────────────────────────────────────────────────────
	// Refuse to start with a malformed definition rather than score with it.
	if err := instrument.ValidateAll(); err != nil {
		return fmt.Errorf("instruments: %w", err)
	}

	// Root context cancelled by OS signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Tracing ───────────────────────────────────────────────────────────────
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:  cfg.ServiceName,
		Environment:  cfg.Env,
		OTLPEndpoint: cfg.OTLPEndpoint,
		OTLPInsecure: cfg.OTLPInsecure,
		SampleRate:   cfg.TraceSampleRate,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown", "error", err)
		}
	}()

	// ── Classifier ────────────────────────────────────────────────────────────
	// The rule predictor alone unless a model service is configured. The
	// crisis override always runs first either way.
	var primary inference.Classifier
	if cfg.MLServiceURL != "" {
		primary = inference.NewServiceClient(cfg.MLServiceURL, cfg.MLServiceTimeout)
		logger.Info("inference: using model service with rule fallback", "url", cfg.MLServiceURL)
	} else {
		logger.Info("inference: using rule predictor only")
	}
	classifier := inference.NewGuarded(primary, logger)

	rec := metrics.New()

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.NewServer(
		classifier,
		chat.NewCannedResponder(nil),
		rec,
		api.Config{
			Env:            cfg.Env,
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
		},
		logger,
	)

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// ── gRPC server ───────────────────────────────────────────────────────────
	gs := grpcapi.NewServer(grpcapi.NewService(classifier, rec, logger), logger)

	// ── Listener ──────────────────────────────────────────────────────────────
	// HTTP and gRPC share one port. gRPC clients are matched on the HTTP/2
	// content-type header; everything else goes to the HTTP server.
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	m := cmux.New(lis)
	grpcL := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpL := m.Match(cmux.Any())

	serverErr := make(chan error, 3)
	go func() {
		if err := gs.Serve(grpcL); err != nil && !errors.Is(err, cmux.ErrListenerClosed) {
			serverErr <- fmt.Errorf("grpc: %w", err)
		}
	}()
	go func() {
		if err := srv.Serve(httpL); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, cmux.ErrListenerClosed) {
			serverErr <- fmt.Errorf("http: %w", err)
		}
	}()
	go func() {
		logger.Info("server listening", "addr", lis.Addr().String())
		if err := m.Serve(); err != nil && !errors.Is(err, net.ErrClosed) {
			serverErr <- fmt.Errorf("mux: %w", err)
		}
	}()

	// Block until either a signal arrives or a server dies unexpectedly.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	// Give in-flight requests up to 20 seconds to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	grpcDone := make(chan struct{})
	go func() {
		gs.GracefulStop()
		close(grpcDone)
	}()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	select {
	case <-grpcDone:
	case <-shutdownCtx.Done():
		gs.Stop()
	}
	_ = lis.Close()

	logger.Info("shutdown complete")
	return nil
}
