package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line: %s", buf.String())
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "catalog-api")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "catalog-api", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	require.Contains(t, entry, "func")
	assert.Contains(t, entry["func"], "TestNewLogger_Fields")
}

func TestNewLogger_StdoutNotNil(t *testing.T) {
	require.NotNil(t, NewLogger("smoke"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestApplyEnvironment(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	ApplyEnvironment(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	ApplyEnvironment(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	child := parent.WithTraceID("abc-123")
	child.Info().Msg("child")
	assert.Equal(t, "abc-123", decodeEntry(t, &buf)["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := (&Logger{zerolog.New(&buf)}).WithTraceID("ctx-trace")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Equal(t, "ctx-trace", decodeEntry(t, &buf)["trace_id"])
}

func TestFromContext_NoLoggerNeverNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := (&Logger{zerolog.New(&buf)}).WithTraceID("req-trace")

	req := httptest.NewRequest("GET", "/api/products", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Warn().Msg("from request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-trace", entry["trace_id"])
	assert.Equal(t, "warn", entry["level"])
}
