package imguisw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
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

// SetLogger configures the logger used by imguisw. By default imguisw
// produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by imguisw:
//   - [slog.LevelDebug]: quad-detector decisions, bind/unbind lifecycle
//   - [slog.LevelWarn]: degenerate geometry skipped during Paint (zero-area
//     triangle, empty clipped triangle bounding box); fully transparent
//     fragments are skipped without logging
//
// Example:
//
//	// Enable warn-level logging to stderr:
//	imguisw.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	imguisw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by imguisw.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logDegenerate reports a silently-skipped fragment of geometry at
// Warn. Checked against Enabled first so a disabled logger costs
// nothing beyond the Enabled call itself.
func logDegenerate(reason string) {
	l := Logger()
	if l.Enabled(context.Background(), slog.LevelWarn) {
		l.Warn("imguisw: skipping degenerate geometry", "reason", reason)
	}
}

// logQuadDecision reports a quad-detector accept/decline decision at
// Debug.
func logQuadDecision(accepted bool, reason string) {
	l := Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("imguisw: quad detector", "accepted", accepted, "reason", reason)
	}
}
