package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize_ValidLevels(t *testing.T) {
	// Save original Log and restore after test
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

	for _, lvl := range levels {
		t.Run(lvl, func(t *testing.T) {
			err := Initialize(lvl)
			assert.NoError(t, err, "expected no error for level %s", lvl)
			assert.NotNil(t, Log, "Log should be initialized")
			assert.IsType(t, &zap.SugaredLogger{}, Log, "Log should be a SugaredLogger")

			assert.NotPanics(t, func() {
				Log.Infow("test log", "level", lvl)
			})
		})
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level")
	assert.Error(t, err, "expected error for invalid log level")
}

func TestInitialize_AppendsToFile(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	path := filepath.Join(t.TempDir(), "app.log")
	assert.NoError(t, os.WriteFile(path, []byte("previous line\n"), 0o644))

	err := Initialize("info", path)
	assert.NoError(t, err)

	Log.Errorw("failed to save rating", "title", "Dune")
	_ = Log.Sync()

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "previous line")
	assert.Contains(t, string(data), "failed to save rating")
	assert.Contains(t, string(data), `"title":"Dune"`)
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.NotNil(t, Log)
	assert.IsType(t, &zap.SugaredLogger{}, Log)

	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
	})
}
