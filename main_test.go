package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBenchConfig(t *testing.T, dir, output string) (configPath, logPath string) {
	t.Helper()
	logPath = filepath.Join(dir, "bench.log")
	body := fmt.Sprintf(`
degrees: [2, 4]
scale: 200
ops: 100
output: %q
plot: ""
baselines:
  list: true
  pebble: false
log:
  level: info
  format: json
  output_file: %q
`, output, logPath)
	configPath = filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o644))
	return configPath, logPath
}

func TestStartWritesResults(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "results.csv")
	configPath, logPath := writeBenchConfig(t, dir, output)

	require.Equal(t, 0, start(configPath))

	_, err := os.Stat(output)
	require.NoError(t, err)
	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"benchmark complete"`)
}

func TestStartFailureIsLoggedAndReported(t *testing.T) {
	dir := t.TempDir()
	configPath, logPath := writeBenchConfig(t, dir, filepath.Join(dir, "missing", "results.csv"))

	assert.Equal(t, 1, start(configPath))

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"benchmark failed"`)
}

func TestStartBadConfig(t *testing.T) {
	assert.Equal(t, 1, start(filepath.Join(t.TempDir(), "absent.yaml")))
}
