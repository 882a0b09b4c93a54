// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/miti/internal/api"
	"github.com/starford/miti/internal/dateservice"
	"github.com/starford/miti/internal/locale"
	"github.com/starford/miti/internal/mcpserver"
	"github.com/starford/miti/internal/sse"
)

func newApplication(opts []Option, logOut io.Writer) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if app.logger == nil {
		app.logger = slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
			Level: app.config.App.LogLevel,
		}))
	}
	return app, nil
}

// NewService builds the date service described by cfg. The labels file, if
// configured, is loaded into the returned store.
func NewService(cfg *Config) (*dateservice.Service, *locale.Store, error) {
	store := locale.NewStore(nil)
	if cfg.Locale.LabelsFile != "" {
		labels, err := locale.LoadFile(cfg.Locale.LabelsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load labels: %w", err)
		}
		store.Swap(labels)
	}
	svc := dateservice.NewService(
		dateservice.WithLabels(store),
		dateservice.WithDefaults(cfg.Calendar.Lang(), cfg.Calendar.Kind(), cfg.Calendar.DefaultLayout),
	)
	return svc, store, nil
}

// NewHandler assembles the root HTTP handler: health checks, metrics and
// the API mounted under /api.
func NewHandler(cfg *Config, svc *dateservice.Service, broker *sse.Broker) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	var routerOpts []api.RouterOption
	if cfg.API.Metrics {
		metrics := api.NewMetrics()
		r.Use(metrics.Middleware)
		r.Handle("/metrics", metrics.Handler())
		routerOpts = append(routerOpts, api.WithMetrics(metrics))
	}
	if limiter := cfg.API.RateLimit.Limiter(); limiter != nil {
		routerOpts = append(routerOpts, api.WithRateLimit(limiter))
	}

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := svc.Today(r.Context(), ""); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"today is outside the supported range"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api, including the SSE endpoint.
	var sseHandler http.Handler
	if broker != nil {
		sseHandler = broker
	}
	r.Mount("/api", api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, sseHandler, routerOpts...))
	return r
}

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts, os.Stdout)
	if err != nil {
		return err
	}
	cfg, logger := app.config, app.logger
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("default_lang", cfg.Calendar.DefaultLang),
		slog.String("default_kind", cfg.Calendar.DefaultKind),
		slog.String("labels_file", cfg.Locale.LabelsFile),
		slog.String("log_level", cfg.App.LogLevel.String()))

	svc, store, err := NewService(cfg)
	if err != nil {
		return err
	}

	// SSE broker.
	broker := sse.NewBroker()
	defer broker.Close()

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           NewHandler(cfg, svc, broker),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Publish today's date and its rollovers.
	g.Go(func() error {
		return sse.RunTodayPublisher(gCtx, svc, broker, cfg.Events.Tick, logger)
	})

	// Start labels watcher with SSE callback.
	if cfg.Locale.Watch {
		g.Go(func() error {
			return locale.Watch(gCtx, cfg.Locale.LabelsFile, store, logger, func(*locale.Labels) {
				broker.Publish(sse.Event{
					Type: sse.TypeLabelsReloaded,
					Data: map[string]string{"file": cfg.Locale.LabelsFile},
				})
			})
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		// Stop the publisher and watcher too when a signal ended the server.
		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

var errShutdown = errors.New("shutdown")

// ServeMCP serves the MCP tools on stdin/stdout. Logs go to stderr so they
// do not corrupt the protocol stream.
func ServeMCP(_ context.Context, opts ...Option) error {
	app, err := newApplication(opts, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(app.logger)

	svc, _, err := NewService(app.config)
	if err != nil {
		return err
	}
	app.logger.Info("MCP server starting on stdio")
	return mcpserver.New(svc).ServeStdio()
}
