package ggplot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards records. Axis and gesture code logs on every touch
// sample, so Enabled reports false and the attributes are never built.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggplot and its sub-packages.
// By default, ggplot produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by ggplot:
//   - [slog.LevelDebug]: contained interaction glitches (degenerate axes,
//     rejected zoom factors, zero-size render targets)
//   - [slog.LevelInfo]: completed exports
//   - [slog.LevelWarn]: configuration corrected at update time
//
// Example:
//
//	ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ggplot.
// Sub-packages (surface, interact, export) call this to share the same
// logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
