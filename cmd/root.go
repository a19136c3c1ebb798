package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/shuv1824/kidsactivities/internal/config"
	"github.com/shuv1824/kidsactivities/internal/handler"
	"github.com/shuv1824/kidsactivities/internal/middleware"
	"github.com/shuv1824/kidsactivities/internal/requestid"
	"github.com/shuv1824/kidsactivities/internal/services/activity"
	"github.com/shuv1824/kidsactivities/internal/utils/catalog"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	if err := catalog.Load(cfg.CatalogFile); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	c := catalog.Get()
	slog.Info("Loaded catalog",
		"categories", len(c.Categories),
		"locations", len(c.Locations),
		"age_ranges", len(c.AgeRanges),
	)

	activityService := activity.NewActivityService(cfg.ActivityService.BaseURL, cfg.ActivityService.Timeout)
	cachedService := activity.NewCachedActivityService(activityService, cfg.ActivityService.CacheTTL, cfg.PopularCount)
	activityHandler := handler.NewActivityHandler(cachedService, c, cfg.PopularCount)

	// Warm cache on startup (fetch data before serving requests)
	slog.Info("Warming activity cache...", "base_url", cfg.ActivityService.BaseURL)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := cachedService.WarmCache(ctx); err != nil {
		slog.Error("Warning: failed to warm cache", "error", err)
	} else {
		slog.Info("Cache warmed successfully")
	}
	cancel()

	bgCtx, stop := context.WithCancel(context.Background())
	defer stop()

	cachedService.StartBackgroundRefresh(bgCtx)

	h := newHandler(bgCtx, cfg, activityHandler)

	slog.Info("starting web server", "env", cfg.Env)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return startServer(server, cfg.Server.ShutdownTimeout)
}

// newHandler builds the router and wraps it in the middleware chain.
func newHandler(ctx context.Context, cfg config.Config, activityHandler *handler.ActivityHandler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// Landing page
	r.HandleFunc("/", activityHandler.Landing).Methods(http.MethodGet)
	r.HandleFunc("/activities", activityHandler.Landing).Methods(http.MethodGet)

	// API v1 subrouter
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RateLimit(ctx, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))

	api.HandleFunc("/activities", activityHandler.ListActivities).Methods(http.MethodGet)
	api.HandleFunc("/activities/featured", activityHandler.Featured).Methods(http.MethodGet)
	api.HandleFunc("/activities/popular", activityHandler.Popular).Methods(http.MethodGet)
	api.HandleFunc("/filters", activityHandler.Filters).Methods(http.MethodGet)

	var h http.Handler = r

	h = middleware.RequestID(h)

	// Recovery (catches panics)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(cfg.IsDevelopment()))(h)

	h = handlers.CompressHandler(h)

	// CORS
	h = handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet}),
		handlers.ExposedHeaders([]string{requestid.Header}),
	)(h)

	// Logging
	h = handlers.LoggingHandler(os.Stdout, h)

	// Forwarded addresses only replace the peer address behind a trusted proxy
	if cfg.Server.TrustProxyHeaders {
		h = handlers.ProxyHeaders(h)
	}

	return h
}

func setupLogger(cfg config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Logging.Level),
	}

	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(requestid.NewLogHandler(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func startServer(server *http.Server, shutdownTimeout time.Duration) error {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case err := <-serverError:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		slog.Info("server stopped gracefully")
	}

	return nil
}
