// Package logging builds the zap logger shared by the scanner components.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Quiet disables logging entirely.
	Quiet bool
	Level zapcore.Level
	// Output defaults to stderr.
	Output io.Writer
}

// New returns a human readable console logger, or a no-op logger when quiet.
func New(opts Options) *zap.Logger {
	if opts.Quiet {
		return zap.NewNop()
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(output)),
		zap.NewAtomicLevelAt(opts.Level),
	)

	return zap.New(core)
}
