package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("apiserver")
	l.Logger = l.Output(&buf)

	l.Info().Str("library", "users/42").Msg("versions listed")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "apiserver", entry["role"])
	assert.Equal(t, "users/42", entry["library"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_Discards(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")
	assert.Zero(t, buf.Len())
}

func TestGetChildLogger_KeepsParentFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("zsync")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("session_id", "s1").Logger()
	child.Info().Msg("session started")

	require.NotSame(t, parent, child)
	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "zsync", entry["role"])
	assert.Equal(t, "s1", entry["session_id"])
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()}
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "t-1", decodeEntry(t, buf.Bytes())["trace_id"])

	buf.Reset()
	req := httptest.NewRequest("GET", "/users/42/items", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "t-1", decodeEntry(t, buf.Bytes())["trace_id"])

	// no logger attached
	assert.NotNil(t, FromContext(context.Background()))
}

func TestNewClientLogger_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "zsync.log")
	l := NewClientLogger("zsync", path)

	l.Warn().Str("object_type", "item").Msg("object skipped")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, data)
	assert.Equal(t, "zsync", entry["role"])
	assert.Equal(t, "item", entry["object_type"])
	assert.Equal(t, "warn", entry["level"])
}
