package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_ExhaustsBurstPerClient(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{RequestsPerSecond: 1, Burst: 2}}
	limiter := NewRateLimiter(cfg)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	e := echo.New()
	handler := limiter.Handle(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	call := func(ip string) error {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)

		return handler(e.NewContext(req, httptest.NewRecorder()))
	}

	require.NoError(t, call("10.0.0.1"))
	require.NoError(t, call("10.0.0.1"))
	assert.ErrorIs(t, call("10.0.0.1"), domainerrors.ErrTooManyRequests)

	// Another client has its own bucket
	assert.NoError(t, call("10.0.0.2"))

	// Tokens refill over time
	fixed = fixed.Add(time.Second)
	assert.NoError(t, call("10.0.0.1"))
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1}}
	limiter := NewRateLimiter(cfg)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.allow("a")
	limiter.allow("b")
	require.Len(t, limiter.visitors, 2)

	now = now.Add(visitorIdleTTL + time.Second)
	limiter.allow("c")

	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "c")
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	metrics := NewMetrics()

	e := echo.New()
	e.Use(metrics.Handle)
	e.GET("/api/products/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := scrape.Body.String()
	assert.True(t, strings.Contains(body, `storefront_http_requests_total{method="GET",route="/api/products/:id",status="200"} 1`), body)
}

func TestMetrics_RegisterPoolCollector(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	metrics := NewMetrics()
	pool := collectors.NewDBStatsCollector(db, "storefront")
	require.NoError(t, metrics.Register(pool))
	assert.Error(t, metrics.Register(pool), "same collector twice")

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), `go_sql_max_open_connections{db_name="storefront"}`)
}

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	mw := NewRequestIDMiddleware(discardLogger())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = c.Get("request_id").(string)

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}

func TestRequestIDMiddleware_ReplacesMalformedHeader(t *testing.T) {
	mw := NewRequestIDMiddleware(discardLogger())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "bad id\nwith newline")
	rec := httptest.NewRecorder()

	err := mw.Process(func(c echo.Context) error { return nil })(e.NewContext(req, rec))

	require.NoError(t, err)
	got := rec.Header().Get("X-Request-Id")
	assert.NotEqual(t, "bad id\nwith newline", got)
	assert.Len(t, got, 36)
}

func TestLoggerMiddleware_WritesErrorBeforeLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	e := echo.New()
	e.Use(mw.Handle)
	e.GET("/api/orders/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"route":"/api/orders/:id"`)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_QuietWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	e.Use(mw.Handle)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return c.NoContent(http.StatusBadGateway) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), `"status":502`)
}
