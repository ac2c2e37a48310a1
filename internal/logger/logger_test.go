package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_ParsesLevel(t *testing.T) {
	l := Init(Config{Level: "warn", Format: "json"})
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := Init(Config{Level: "loud"})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestInit_WritesJSONToOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Init(Config{Level: "info", Format: "json", Output: &buf})

	l.Info().Str("run_id", "abc").Msg("run started")

	assert.Contains(t, buf.String(), `"run_id":"abc"`)
	assert.Contains(t, buf.String(), `"message":"run started"`)
}
