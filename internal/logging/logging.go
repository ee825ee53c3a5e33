// Package logging builds the zap logger shared by the benchmark and the shell.
package logging

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the log section of the YAML config.
type Config struct {
	Level string `yaml:"level"`
	// Format is "console" (default) or "json".
	Format string `yaml:"format"`
	// OutputFile is a path, or "stdout" / "stderr" (default).
	OutputFile string `yaml:"output_file"`
}

// MinLevel parses Level. Empty or unrecognised levels mean info.
func (c Config) MinLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Sink opens the destination named by OutputFile.
func (c Config) Sink() (zapcore.WriteSyncer, error) {
	switch strings.ToLower(c.OutputFile) {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	f, err := os.OpenFile(c.OutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "logging: open %s", c.OutputFile)
	}
	return zapcore.AddSync(f), nil
}

func (c Config) encoder() zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if strings.EqualFold(c.Format, "json") {
		return zapcore.NewJSONEncoder(ec)
	}
	return zapcore.NewConsoleEncoder(ec)
}

// New builds a logger tagged with service=leafchain.
func New(c Config) (*zap.Logger, error) {
	sink, err := c.Sink()
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(c.encoder(), sink, c.MinLevel())
	return zap.New(core, zap.AddCaller(), zap.Fields(zap.String("service", "leafchain"))), nil
}
