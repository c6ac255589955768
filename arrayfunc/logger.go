package arrayfunc

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger is the structured logger arrayfunc reports dispatch decisions to.
// Arithmetic faults are returned to the caller and never logged.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs Info and above as text on
// stderr, which leaves dispatch records out.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger returns a Logger whose handler drops every record.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// logDispatch records the routine a validated call is about to run.
func (l *Logger) logDispatch(ctx context.Context, c *call) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.LogAttrs(ctx, slog.LevelDebug, "dispatch",
		slog.String("op", c.op.String()),
		slog.String("type", c.code.String()),
		slog.String("shape", c.shape.String()),
		slog.Int("n", c.n),
		slog.Bool("checked", !c.opts.mathErrors),
		slog.Bool("out", c.out != nil),
	)
}

var logger atomic.Pointer[Logger]

func init() {
	logger.Store(NoopLogger())
}

// SetLogger installs l for all subsequent calls. nil restores the no-op
// logger.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	logger.Store(l)
}
