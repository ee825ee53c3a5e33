package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
degrees: [2, 4]
scale: 1000
baselines:
  pebble: false
metrics_addr: ":9100"
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4}, cfg.Degrees)
	assert.Equal(t, 1000, cfg.Scale)
	assert.Equal(t, 50000, cfg.Ops)
	assert.Equal(t, "results.csv", cfg.Output)
	assert.True(t, cfg.Baselines.List)
	assert.False(t, cfg.Baselines.Pebble)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.OutputFile)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"small degree": "degrees: [1]\n",
		"no degrees":   "degrees: []\n",
		"zero scale":   "scale: 0\n",
		"negative ops": "ops: -1\n",
		"bad yaml":     "degrees: [3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
