package svgdom

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithTraceLogger(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping trace logger test")
		return
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceLogger(context.Background(), logger)

	tlog := getTraceLogFromContext(ctx)
	require.NotNil(t, tlog)
	tlog.Debug("test message")
	require.Contains(t, buf.String(), "test message")
	require.Contains(t, buf.String(), "TestWithTraceLogger", "caller is recorded")

	// a second logger does not replace the first
	var other bytes.Buffer
	ctx = WithTraceLogger(ctx, slog.New(slog.NewJSONHandler(&other, nil)))
	getTraceLogFromContext(ctx).Info("again")
	require.Empty(t, other.String())
}

func TestNullLogger(t *testing.T) {
	tlog := getTraceLogFromContext(context.Background())
	require.Same(t, nullLogger, tlog)
}
