package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"newsportal/internal/handler/http/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), "raw=%q", raw)
	}
}

func TestNew_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "", slog.LevelInfo).Info("article published", slog.String("slug", "budget-vote"))

	entry := decode(t, &buf)
	assert.Equal(t, "article published", entry["msg"])
	assert.Equal(t, "budget-vote", entry["slug"])
	assert.Equal(t, "INFO", entry["level"])
	assert.NotContains(t, entry, "source")
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "TEXT", slog.LevelInfo).Info("ad clicked", slog.Int64("ad_id", 7))

	out := buf.String()
	assert.Contains(t, out, `msg="ad clicked"`)
	assert.Contains(t, out, "ad_id=7")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json", slog.LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "kept")
}

func TestNew_DebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "json", slog.LevelDebug).Debug("slug candidate")

	assert.Contains(t, decode(t, &buf), "source")
}

func TestNewLogger_ReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "text")

	logger := NewLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestForRequest(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx := requestid.WithRequestID(context.Background(), "req-42")
	ctx, span := tp.Tracer("test").Start(ctx, "GET /articles")
	defer span.End()

	var buf bytes.Buffer
	ForRequest(ctx, New(&buf, "json", slog.LevelInfo)).Info("listed")

	entry := decode(t, &buf)
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, span.SpanContext().TraceID().String(), entry["trace_id"])
}

func TestForRequest_NoIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	ForRequest(context.Background(), New(&buf, "json", slog.LevelInfo)).Info("listed")

	entry := decode(t, &buf)
	assert.NotContains(t, entry, "request_id")
	assert.NotContains(t, entry, "trace_id")
}

/* ───────── ヘルパ ───────── */

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}
