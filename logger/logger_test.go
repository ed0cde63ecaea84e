package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOptions(Options{Output: &buf, Level: "debug", JSON: true})

	l.Debug("listing directory", "path", "/tmp", "entries", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "listing directory", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "/tmp", entry["path"])
	assert.Equal(t, float64(3), entry["entries"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOptions(Options{Output: &buf, Level: "warn"})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOptions(Options{Output: &buf, Level: "chatty"})

	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFieldsOddArguments(t *testing.T) {
	f := fields([]interface{}{"a", 1, 2, "b", "dangling"})
	assert.Equal(t, 1, f["a"])
	assert.Equal(t, "b", f["2"])
	assert.Equal(t, "dangling", f["!BADKEY"])
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := New()
	assert.Same(t, l, OrDiscard(l))
}
