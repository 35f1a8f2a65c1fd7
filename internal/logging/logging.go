// Package logging builds the file-backed zap logger used while the TUI
// owns the terminal. Writing to stderr would corrupt the alternate screen,
// so interactive sessions log to a dated file under the configured dir.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lattice/internal/config"
)

// NewFileLogger opens (or creates) today's log file and returns a JSON
// zap logger writing to it, plus a close function for shutdown.
func NewFileLogger(cfg config.LoggingConfig) (*zap.Logger, func(), error) {
	if cfg.Dir == "" {
		// No usable log dir (e.g. no home); stay silent rather than fail.
		nop := zap.NewNop()
		return nop, func() {}, nil
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	name := fmt.Sprintf("lattice_%s.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(cfg.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(file),
		ParseLevel(cfg.Level),
	)
	logger := zap.New(core)

	closer := func() {
		_ = logger.Sync()
		_ = file.Close()
	}
	return logger, closer, nil
}

// ParseLevel maps a config level string to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
