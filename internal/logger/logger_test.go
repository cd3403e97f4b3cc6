package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "lumen.log")

	l, closer, err := New(Config{Path: path, Level: "info"})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("session started", "preset", "Pomodoro")
	l.Warn("notification failed", "err", "no daemon")

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "preset=Pomodoro")
	assert.Contains(t, out, "notification failed")
	assert.NotContains(t, out, "hidden")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, log.InfoLevel, parseLevel("chatty"))
	assert.Equal(t, log.InfoLevel, parseLevel(""))
}
