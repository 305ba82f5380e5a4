package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hint_round_o", sanitize("hint round/o"))
	assert.Equal(t, "session", sanitize(""))
	assert.Len(t, sanitize(string(bytes.Repeat([]byte("a"), 100))), 60)
}

func TestWithFieldsCarriesContext(t *testing.T) {
	var buf bytes.Buffer
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(&buf), zapcore.DebugLevel)

	log := FromZap(zap.New(core)).
		WithField("command", "fire").
		WithFields(map[string]any{"mode": "o"})
	log.Warn("Hint fired", "status", "DONE:")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Hint fired", entry["msg"])
	assert.Equal(t, "fire", entry["command"])
	assert.Equal(t, "o", entry["mode"])
	assert.Equal(t, "DONE:", entry["status"])
}

func TestNopCloses(t *testing.T) {
	log := NewNop()
	log.Info("ignored", "k", 1)
	assert.NoError(t, log.Close())
}
