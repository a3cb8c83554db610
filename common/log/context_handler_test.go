package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"opencsg.com/bookmark-server/common/utils/trace"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(buf, &slog.HandlerOptions{
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(&ContextHandler{Handler: jsonHandler})
}

func TestContextHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	ctx := trace.SetRequestIDInContext(context.Background(), "req-12345")
	logger.ErrorContext(ctx, "test message")

	var result map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	require.Equal(t, "test message", result["msg"])
	require.Equal(t, "req-12345", result["request_id"])

	source, ok := result["source"].(map[string]interface{})
	require.True(t, ok, "source field should be present")
	require.Contains(t, source["file"], "context_handler_test.go")
}

func TestContextHandler_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.InfoContext(context.Background(), "plain")

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.NotContains(t, result, "request_id")
}

func TestContextHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf).With(slog.String("component", "bookmark"))

	ctx := trace.SetRequestIDInContext(context.Background(), "req-1")
	logger.InfoContext(ctx, "derived")

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, "req-1", result["request_id"])
	require.Equal(t, "bookmark", result["component"])
}
