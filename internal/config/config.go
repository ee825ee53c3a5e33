// Package config loads the YAML configuration used by the benchmark driver
// and the interactive shell.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/btree-query-bench/leafchain/internal/logging"
)

type Config struct {
	// Degrees lists the minimum degrees swept by the benchmark. The shell
	// uses the first one.
	Degrees []int `yaml:"degrees"`
	// Scale is the number of keys loaded before the workloads run.
	Scale int `yaml:"scale"`
	// Ops is the number of operations per mixed workload.
	Ops       int       `yaml:"ops"`
	Output    string    `yaml:"output"`
	Plot      string    `yaml:"plot"`
	Baselines Baselines `yaml:"baselines"`
	// PebbleDir holds the Pebble baseline; empty means a temporary directory.
	PebbleDir string `yaml:"pebble_dir"`
	// MetricsAddr, when set, serves Prometheus metrics at /metrics.
	MetricsAddr string         `yaml:"metrics_addr"`
	Log         logging.Config `yaml:"log"`
}

type Baselines struct {
	List   bool `yaml:"list"`
	Pebble bool `yaml:"pebble"`
}

func Default() Config {
	return Config{
		Degrees: []int{3, 8, 32, 128},
		Scale:   100000,
		Ops:     50000,
		Output:  "results.csv",
		Plot:    "latency.png",
		Baselines: Baselines{
			List:   true,
			Pebble: true,
		},
		Log: logging.Config{Level: "info", Format: "console", OutputFile: "stderr"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Degrees) == 0 {
		return errors.New("config: at least one degree is required")
	}
	for _, d := range c.Degrees {
		if d < 2 {
			return errors.Newf("config: degree %d is below the minimum of 2", d)
		}
	}
	if c.Scale <= 0 {
		return errors.Newf("config: scale must be positive, got %d", c.Scale)
	}
	if c.Ops < 0 {
		return errors.Newf("config: ops must not be negative, got %d", c.Ops)
	}
	return nil
}
