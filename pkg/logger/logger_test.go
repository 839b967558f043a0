package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"go-application-tracker/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestInit(t *testing.T) {
	t.Run("Should write JSON records at or above the level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.Init("warn", &buf)

		log.Info("dropped")
		log.Warn("kept", "name", "Alice")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "kept", entry["msg"])
		assert.Equal(t, "Alice", entry["name"])
		assert.Same(t, log, logger.Log)
	})

	t.Run("Should never return a nil logger", func(t *testing.T) {
		assert.NotNil(t, logger.OrDiscard(nil))
		l := slog.Default()
		assert.Same(t, l, logger.OrDiscard(l))
	})
}
