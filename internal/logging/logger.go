// Package logging builds the zap logger and a combat sink that records the
// match as structured log entries.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the level, encoding and destinations of the logger.
type Options struct {
	Level       string   // debug, info, warn, error
	Format      string   // json or console
	OutputPaths []string // defaults to stderr
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New initializes a zap logger from opts.
func New(opts Options) (*zap.Logger, error) {
	var zapCfg zap.Config
	if opts.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(ParseLevel(opts.Level))
	if len(opts.OutputPaths) > 0 {
		// No ANSI color codes in log files.
		if opts.Format != "json" {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		zapCfg.OutputPaths = opts.OutputPaths
		zapCfg.ErrorOutputPaths = opts.OutputPaths
	}

	return zapCfg.Build()
}
