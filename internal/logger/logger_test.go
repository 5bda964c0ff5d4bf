package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "catalogctl")

	l.Info().Msg("suite started")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "catalogctl", entry["role"])
	assert.Equal(t, "suite started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_WritesToStderr(t *testing.T) {
	require.NotNil(t, NewLogger("catalog-stub"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("discarded")
	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "catalog-stub")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "trace-1")
	})
	child.Info().Msg("request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "catalog-stub", entry["role"])
	assert.Equal(t, "trace-1", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "trace-2").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "trace-2", decodeEntry(t, &buf)["trace_id"])

	buf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/employees", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "trace-2", decodeEntry(t, &buf)["trace_id"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestLeveled(t *testing.T) {
	t.Run("filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := newLogger(&buf, "reaper").Leveled("warn")
		require.NoError(t, err)

		l.Info().Msg("dropped")
		assert.Empty(t, buf.String())

		l.Warn().Msg("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("empty keeps logger", func(t *testing.T) {
		l := Nop()
		got, err := l.Leveled("")
		require.NoError(t, err)
		assert.Same(t, l, got)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Nop().Leveled("shouting")
		require.Error(t, err)
	})
}
