package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newCapturingLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newCapturingLogger(&base), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), newCapturingLogger(&scoped).With(slog.String("request_id", "r-9")))

	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE users SET balance = balance - 5", 0 }, errors.New("deadlock detected"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"r-9"`)
	assert.Contains(t, scoped.String(), "deadlock detected")
}

func TestQueryLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newCapturingLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestQueryLogger_SlowQueryTruncatesSQL(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newCapturingLogger(&buf), &config.Config{})
	longSQL := "SELECT " + strings.Repeat("x", 3*maxLoggedSQLLength)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return longSQL, 3 }, nil)

	out := buf.String()
	assert.Contains(t, out, "GORM slow query")
	assert.Less(t, len(out), len(longSQL))
}

func TestQueryLogger_DebugLogsEveryQuery(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(newCapturingLogger(&buf), cfg)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Contains(t, buf.String(), `"msg":"GORM query"`)
}
