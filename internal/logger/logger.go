package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
	BuildIDKey   = "build_id"
)

var (
	once sync.Once

	// globalZap backs Sync; application code logs through the logr wrapper.
	globalZap  *zap.Logger
	globalLogr *logr.Logger

	noop = logr.Discard()
)

// Setup builds the process logger once. Verbose lowers the threshold so that
// V(1) messages are written. Later calls return the first logger.
func Setup(verbose bool) *logr.Logger {
	once.Do(func() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderCfg.TimeKey = TimeStampKey
		encoderCfg.MessageKey = MessageKey

		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(level),
		)
		globalZap = zap.New(core, zap.AddStacktrace(zap.ErrorLevel))

		l := zapr.NewLogger(globalZap)
		globalLogr = &l
	})
	if globalLogr == nil {
		return &noop
	}
	return globalLogr
}

// WithLogger returns a context carrying log.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if existing, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok && existing == log {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the logger stored in ctx, the process logger if there
// is none, or a discarding logger if Setup was never called.
func FromContext(ctx context.Context) *logr.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
			return log
		}
	}
	if globalLogr != nil {
		return globalLogr
	}
	return &noop
}

// WithValues returns a copy of lgr with extra key/value pairs attached.
func WithValues(lgr *logr.Logger, keysAndValues ...any) *logr.Logger {
	l := lgr.WithValues(keysAndValues...)
	return &l
}

// Sync flushes buffered entries. Errors from syncing a terminal or pipe are ignored.
func Sync() {
	if globalZap == nil {
		return
	}
	if err := globalZap.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to sync logger: %v\n", err)
	}
}

func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}
