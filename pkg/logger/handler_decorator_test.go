package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deepreport/pkg/logger"
)

type runIDKey struct{}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	t.Run("copies present values and skips missing ones", func(t *testing.T) {
		t.Parallel()

		type topicKey struct{}
		buf := &bytes.Buffer{}
		h := logger.NewContextHandler(slog.NewJSONHandler(buf, nil),
			logger.ContextValue{Name: "run_id", Key: runIDKey{}},
			logger.ContextValue{Name: "topic", Key: topicKey{}},
		)

		ctx := context.WithValue(context.Background(), runIDKey{}, "run-7")
		slog.New(h).InfoContext(ctx, "delivered")

		entry := decodeEntry(t, buf)
		assert.Equal(t, "run-7", entry["run_id"])
		assert.NotContains(t, entry, "topic")
	})

	t.Run("ignores values without a name or key", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := logger.NewContextHandler(slog.NewJSONHandler(buf, nil),
			logger.ContextValue{Name: "", Key: runIDKey{}},
			logger.ContextValue{Name: "run_id", Key: nil},
		)

		ctx := context.WithValue(context.Background(), runIDKey{}, "run-7")
		require.NotPanics(t, func() { slog.New(h).InfoContext(ctx, "delivered") })

		entry := decodeEntry(t, buf)
		assert.NotContains(t, entry, "run_id")
		assert.NotContains(t, entry, "")
	})

	t.Run("derived handlers keep the context values", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h := logger.NewContextHandler(slog.NewJSONHandler(buf, nil),
			logger.ContextValue{Name: "run_id", Key: runIDKey{}},
		)
		log := slog.New(h).With(logger.Component("gateway")).WithGroup("delivery")

		ctx := context.WithValue(context.Background(), runIDKey{}, "run-9")
		log.InfoContext(ctx, "sent", slog.String("provider", "resend"))

		entry := decodeEntry(t, buf)
		assert.Equal(t, "gateway", entry["component"])
		group, ok := entry["delivery"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "resend", group["provider"])
		assert.Equal(t, "run-9", group["run_id"])
	})

	t.Run("level check is delegated", func(t *testing.T) {
		t.Parallel()

		h := logger.NewContextHandler(slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}))
		assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	})
}
