package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lumen")

	assert.Empty(t, IconPath(dir))

	require.NoError(t, Install(dir))

	want, err := embeddedFiles.ReadFile(filesDir + "/" + Icon)
	require.NoError(t, err)

	got, err := os.ReadFile(IconPath(dir))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInstallKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	custom := []byte("custom icon")

	require.NoError(t, os.WriteFile(filepath.Join(dir, Icon), custom, 0o600))
	require.NoError(t, Install(dir))

	got, err := os.ReadFile(filepath.Join(dir, Icon))
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}
