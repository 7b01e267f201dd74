package logging

import (
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the console logger used by the seed command. Every line carries
// a run_id so output from repeated runs against the same project can be told apart.
func New(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.Sugar().With("run_id", uuid.New().String()), nil
}

// Recover runs fn and converts a panic into an error, logging the stack trace
// with the given context fields.
func Recover(logger *zap.SugaredLogger, fn func() error, fields ...interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Errorw("panic recovered",
					append(fields,
						"panic", r,
						"stack", string(debug.Stack()),
					)...,
				)
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
