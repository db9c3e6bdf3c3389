package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"content-workflow/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func captureLogger(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := logger.GetLogger()
	logger.SetLogger(logger.New(&buf, level))
	t.Cleanup(func() { logger.SetLogger(previous) })
	return &buf
}

func TestLogger_Info(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, `"key":"value"`)
	assert.Contains(t, output, `"count":42`)
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := captureLogger(t, slog.LevelWarn)

	logger.Info("hidden")
	logger.Debug("also hidden")
	logger.Warn("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
}

func TestLogger_WithSessionAndItem(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	logger.WithSessionID("session-1").Info("session started")
	logger.WithItemID("item-9").Warn("item failed")
	logger.WithRequestID("req-123").Info("processing request")
	logger.WithJob("publisher").Info("run finished")

	output := buf.String()
	assert.Contains(t, output, `"session_id":"session-1"`)
	assert.Contains(t, output, `"item_id":"item-9"`)
	assert.Contains(t, output, `"request_id":"req-123"`)
	assert.Contains(t, output, `"job":"publisher"`)
}

func TestLogger_TraceCorrelation(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x0a, 0x0b, 0x0c, 0x01},
		SpanID:     trace.SpanID{0x01, 0x02},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	logger.InfoContext(ctx, "traced message")
	logger.InfoContext(context.Background(), "untraced message")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"trace_id":"`+sc.TraceID().String()+`"`)
	assert.Contains(t, string(lines[0]), `"span_id":"`+sc.SpanID().String()+`"`)
	assert.NotContains(t, string(lines[1]), "trace_id")
}

func TestLogger_WithFields(t *testing.T) {
	buf := captureLogger(t, slog.LevelInfo)

	fieldsLogger := logger.WithFields(
		slog.String("service", "publisher"),
		slog.Int("batch_size", 10),
	)
	fieldsLogger.Info("batch processing")

	output := buf.String()
	assert.Contains(t, output, "batch processing")
	assert.Contains(t, output, `"service":"publisher"`)
	assert.Contains(t, output, `"batch_size":10`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(input), "level %q", input)
	}
}

func TestLogger_GetLogger(t *testing.T) {
	require.NotNil(t, logger.GetLogger())
}
