package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shuv1824/kidsactivities/internal/config"
	"github.com/shuv1824/kidsactivities/internal/handler"
	"github.com/shuv1824/kidsactivities/internal/types"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestSetupLoggerLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Env = "production"
	cfg.Logging.Level = "warn"

	logger := setupLogger(cfg)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

type emptySource struct{}

func (emptySource) Activities(ctx context.Context) ([]types.Activity, error) {
	return []types.Activity{}, nil
}

func (emptySource) Featured(ctx context.Context) ([]types.Activity, error) {
	return []types.Activity{}, nil
}

func (emptySource) Popular(ctx context.Context, n int) ([]types.Activity, error) {
	return []types.Activity{}, nil
}

func rateLimitedConfig(trustProxy bool) config.Config {
	cfg := config.Default()
	cfg.RateLimit.RequestsPerMinute = 1
	cfg.RateLimit.Burst = 2
	cfg.Server.TrustProxyHeaders = trustProxy
	return cfg
}

// sendForwarded issues n API requests from one peer, each claiming a
// different forwarded client address, and returns the status codes.
func sendForwarded(t *testing.T, h http.Handler, n int) []int {
	t.Helper()
	codes := make([]int, n)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/filters", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	return codes
}

func TestForwardedForDoesNotResetRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := rateLimitedConfig(false)
	h := newHandler(ctx, cfg, handler.NewActivityHandler(emptySource{}, types.Catalog{}, cfg.PopularCount))

	codes := sendForwarded(t, h, 3)

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestForwardedForHonouredBehindTrustedProxy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := rateLimitedConfig(true)
	h := newHandler(ctx, cfg, handler.NewActivityHandler(emptySource{}, types.Catalog{}, cfg.PopularCount))

	codes := sendForwarded(t, h, 3)

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusOK}, codes)
}

func TestNewHandlerRoutes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Default()
	h := newHandler(ctx, cfg, handler.NewActivityHandler(emptySource{}, types.Catalog{}, cfg.PopularCount))

	for _, path := range []string{"/", "/activities", "/health", "/api/v1/activities", "/api/v1/activities/featured", "/api/v1/activities/popular", "/api/v1/filters"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
