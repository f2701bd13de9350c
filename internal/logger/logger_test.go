package logger

import (
	"bytes"
	"context"
	"encoding/json"
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

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry contains the "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role")

	l.Info().Msg("hello")

	assert.Equal(t, "test-role", decodeEntry(t, &buf)["role"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ts-role")

	l.Info().Msg("ts check")

	_, hasTime := decodeEntry(t, &buf)["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestSetLevel_FiltersLowerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "level-role")

	require.NoError(t, l.SetLevel("warn"))
	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", decodeEntry(t, &buf)["message"])
}

func TestSetLevel_Empty_NoChange(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "level-role")

	require.NoError(t, l.SetLevel(""))
	l.Debug().Msg("still here")

	assert.NotEmpty(t, buf.String())
}

func TestSetLevel_Invalid(t *testing.T) {
	l := Nop()
	assert.Error(t, l.SetLevel("loud"))
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestWithTraceID_AddsField(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "trace-role")

	parent.WithTraceID("abc-123").Info().Msg("traced")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "abc-123", entry["trace_id"])
	assert.Equal(t, "trace-role", entry["role"])
}

func TestWithTraceID_DoesNotTouchParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "trace-role")
	_ = parent.WithTraceID("abc-123")

	parent.Info().Msg("untraced")

	_, has := decodeEntry(t, &buf)["trace_id"]
	assert.False(t, has)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx, Nop())
	require.NotNil(t, l)

	l.Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}

func TestFromContext_NoLogger_ReturnsFallback(t *testing.T) {
	fallback := Nop()
	assert.Same(t, fallback, FromContext(context.Background(), fallback))
}

func TestFromContext_DisabledLogger_ReturnsFallback(t *testing.T) {
	fallback := Nop()
	ctx := zerolog.Nop().WithContext(context.Background())

	assert.Same(t, fallback, FromContext(ctx, fallback))
}

func TestFromContext_TracedChild(t *testing.T) {
	var buf bytes.Buffer
	traced := newLogger(&buf, "trace-role").WithTraceID("abc-123")
	ctx := traced.WithContext(context.Background())

	FromContext(ctx, Nop()).Info().Msg("downstream")

	assert.Equal(t, "abc-123", decodeEntry(t, &buf)["trace_id"])
}
