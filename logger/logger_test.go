package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMessage = "test message"

func TestNewWithWriterLevels(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel zerolog.Level
	}{
		{name: "debug", level: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "warn", level: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "error", level: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid_defaults_to_info", level: "loud", expectedLevel: zerolog.InfoLevel},
		{name: "empty_defaults_to_info", level: "", expectedLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithWriter(&buf, tt.level, false)
			assert.Equal(t, tt.expectedLevel, l.Level())
		})
	}
}

func TestLogEventFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", false)

	l.Warn().
		Str("path", "/foo").
		Strs("names", []string{"a", "b"}).
		Int("count", 3).
		Bool("dry_run", true).
		Dur("elapsed", time.Second).
		Interface("extra", map[string]int{"x": 1}).
		Err(errors.New("boom")).
		Msg(testMessage)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, testMessage, entry["message"])
	assert.Equal(t, "/foo", entry["path"])
	assert.Equal(t, []any{"a", "b"}, entry["names"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Equal(t, true, entry["dry_run"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn", false)

	l.Debug().Msg("hidden")
	l.Info().Msgf("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info", false).WithFields(map[string]any{"command": "reset"})

	l.Info().Msg(testMessage)
	assert.Contains(t, buf.String(), `"command":"reset"`)
}

func TestPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info", true)

	l.Info().Msg(testMessage)
	assert.Contains(t, buf.String(), testMessage)
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Error().Str("k", "v").Msg(testMessage)
	})
}
