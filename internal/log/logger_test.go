package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewJSON(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := New(WithFormat(FormatJSON), WithWriter(&buf), WithLevel(zerolog.DebugLevel))
	logger.Debug().Str("op", "encrypt").Str("secret_key", Redacted).Msg("failed")

	var entry map[string]any
	assert.NoError(json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal("debug", entry["level"])
	assert.Equal("encrypt", entry["op"])
	assert.Equal(Redacted, entry["secret_key"])
	assert.Equal("failed", entry["message"])
}

func TestLevelFilters(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := New(WithFormat(FormatJSON), WithWriter(&buf), WithLevel(zerolog.WarnLevel))
	logger.Info().Msg("hidden")
	assert.Zero(buf.Len())
	logger.Warn().Msg("shown")
	assert.Contains(buf.String(), "shown")
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	New(WithWriter(&buf)).Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)

	for in, want := range map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		"WARN":     zerolog.WarnLevel,
		"disabled": zerolog.Disabled,
		"off":      zerolog.Disabled,
	} {
		got, err := ParseLevel(in)
		assert.NoError(err, in)
		assert.Equal(want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(err)
}
