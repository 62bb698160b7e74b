package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptive-learning/studybuddy/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(config.LogConfig{File: path, Level: "info", MaxSizeMB: 1}, Options{})
	require.NoError(t, err)

	log.Infow("quiz finished", "goal", "Improve Math", "correct", 7)
	log.Debugw("not written at info level")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "quiz finished", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Improve Math", entry["goal"])
}

func TestNew_TeesToConsole(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(config.LogConfig{File: path, Level: "debug"}, Options{Console: &console})
	require.NoError(t, err)

	log.Warnw("provider not configured")
	_ = log.Sync()

	assert.Contains(t, console.String(), "provider not configured")
	assert.Contains(t, console.String(), "WARN")
}

func TestNew_RejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}, Options{})
	require.Error(t, err)
}

func TestDefaultFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	p, err := DefaultFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "studybuddy", "studybuddy.log"), p)
}
