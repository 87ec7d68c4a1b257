// Package logging builds the zap logger shared by the testbed and its scenes.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects level, encoding and destination
// Output is a zap sink path; the terminal viewer owns stdout so it defaults to a file
type Options struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	Output      string `yaml:"output"`
}

// DefaultOptions logs info and above as JSON to geomlab.log
func DefaultOptions() Options {
	return Options{
		Level:  "info",
		Output: "geomlab.log",
	}
}

// ParseLevel maps a level name to zap, empty means info
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zap.InfoLevel, nil
	}
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.InfoLevel, fmt.Errorf("log level %q: %w", level, err)
	}
	return l, nil
}

// New builds a logger from opts
// Development switches to the console encoder with caller info and no sampling
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	output := opts.Output
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
		DisableCaller:    true,
	}
	if opts.Development {
		config.Development = true
		config.Sampling = nil
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.DisableCaller = false
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Named returns a child logger for one scene, a nil parent yields a no-op logger
func Named(parent *zap.Logger, name string) *zap.Logger {
	if parent == nil {
		return zap.NewNop()
	}
	return parent.Named(name)
}
