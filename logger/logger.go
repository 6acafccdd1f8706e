// Package logger holds the process-wide zap logger. Components take a named
// child from ComponentLogger and keep it for their lifetime.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger     *zap.SugaredLogger
	JSONOutput bool
)

func init() {
	// usable before Initialize runs
	Logger = zap.NewNop().Sugar()
}

// Initialize builds the global logger at level ("debug", "info", "warn",
// "error"). JSON output is meant for machines, the console form for people.
func Initialize(level string, jsonOutput bool) error {
	var lvl zapcore.Level
	if level == "" {
		level = "info"
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return errors.WithHint(errors.Wrapf(err, "log level %q", level),
			"use one of debug, info, warn or error")
	}

	var zapLogger *zap.Logger
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		var err error
		if zapLogger, err = config.Build(); err != nil {
			return errors.Wrap(err, "building json logger")
		}
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			lvl,
		))
	}

	JSONOutput = jsonOutput
	Logger = zapLogger.Sugar()
	return nil
}

// ComponentLogger returns a logger named after a component, e.g. "chord" or
// "server". Call it after Initialize.
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Cleanup flushes buffered entries.
func Cleanup() {
	_ = Logger.Sync()
}
