// File: logging/logger.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide leveled logger with printf-style helpers. The active threshold
// is a zap.AtomicLevel, so SetLevel is safe to call from any goroutine.

package logging

import (
	"fmt"
	"os"
	"sync"

	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-containers/api"
)

// Level is a logging severity.
type Level = zapcore.Level

// Supported levels, lowest first.
const (
	DEBUG = zapcore.DebugLevel
	INFO  = zapcore.InfoLevel
	WARN  = zapcore.WarnLevel
	ERROR = zapcore.ErrorLevel
	FATAL = zapcore.FatalLevel
)

var (
	threshold = uberzap.NewAtomicLevelAt(DEBUG)

	mu     sync.RWMutex
	logger = newLogger(false)
)

func newLogger(development bool) *uberzap.SugaredLogger {
	encCfg := uberzap.NewProductionEncoderConfig()
	if development {
		encCfg = uberzap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), threshold)
	opts := []uberzap.Option{uberzap.AddCaller(), uberzap.AddCallerSkip(1)}
	if development {
		opts = append(opts, uberzap.Development())
	}
	return uberzap.New(core, opts...).Sugar()
}

// Init rebuilds the process logger. development switches to the zap
// development encoder and DPanic behaviour.
func Init(development bool) {
	l := newLogger(development)
	mu.Lock()
	prev := logger
	logger = l
	mu.Unlock()
	_ = prev.Sync()
}

// UseCore routes output to core until the returned restore func is called.
// The process threshold still applies. Meant for tests.
func UseCore(core zapcore.Core, opts ...uberzap.Option) (restore func()) {
	opts = append([]uberzap.Option{uberzap.AddCallerSkip(1)}, opts...)
	l := uberzap.New(core, opts...).Sugar()
	mu.Lock()
	prev := logger
	logger = l
	mu.Unlock()
	return func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	}
}

// SetLevel sets the minimum severity that is written.
func SetLevel(l Level) {
	threshold.SetLevel(l)
}

// GetLevel returns the active threshold.
func GetLevel() Level {
	return threshold.Level()
}

// ParseLevel maps "debug", "info", "warn", "error" or "fatal" to a Level.
// Any other name, including zap's dpanic and panic, is rejected.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return DEBUG, fmt.Errorf("empty log level: %w", api.ErrInvalidArgument)
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return DEBUG, fmt.Errorf("log level %q: %w", s, api.ErrInvalidArgument)
	}
	switch lvl {
	case DEBUG, INFO, WARN, ERROR, FATAL:
		return lvl, nil
	default:
		return DEBUG, fmt.Errorf("unsupported log level %q: %w", s, api.ErrInvalidArgument)
	}
}

func current() *uberzap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debugf logs at DEBUG.
func Debugf(format string, args ...any) {
	if threshold.Enabled(DEBUG) {
		current().Debugf(format, args...)
	}
}

// Infof logs at INFO.
func Infof(format string, args ...any) {
	if threshold.Enabled(INFO) {
		current().Infof(format, args...)
	}
}

// Warnf logs at WARN.
func Warnf(format string, args ...any) {
	if threshold.Enabled(WARN) {
		current().Warnf(format, args...)
	}
}

// Errorf logs at ERROR.
func Errorf(format string, args ...any) {
	if threshold.Enabled(ERROR) {
		current().Errorf(format, args...)
	}
}

// Fatalf logs at FATAL and then exits the process through zap's fatal hook.
func Fatalf(format string, args ...any) {
	current().Fatalf(format, args...)
}

// Sync flushes buffered output.
func Sync() error {
	return current().Sync()
}
