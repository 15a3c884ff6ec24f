package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"server-2024-01-01T00-00-00.log",
		"server-2024-01-02T00-00-00.log",
		"server-2024-01-03T00-00-00.log",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	require.NoError(t, cleanupOldLogs(dir, 2))

	remaining, err := filepath.Glob(filepath.Join(dir, "server-*.log"))
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
	assert.NoFileExists(t, filepath.Join(dir, names[0]))
}

func TestSetupLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := SetupLogFile(dir, 5)
	require.NoError(t, err)
	defer f.Close()

	assert.FileExists(t, f.Name())
}

func TestNewLogger_WritesToLogDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Environment: "prod", LogDir: dir, LogMaxFiles: 3}

	var stdout bytes.Buffer
	logger, closer, err := NewLogger(cfg, &stdout)
	require.NoError(t, err)

	logger.Info("hello", "k", "v")
	logger.Debug("hidden")
	require.NoError(t, closer.Close())

	assert.Contains(t, stdout.String(), `"msg":"hello"`)
	assert.NotContains(t, stdout.String(), "hidden")

	files, err := filepath.Glob(filepath.Join(dir, "server-*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
