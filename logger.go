package colorpick

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Because Enabled is always false, the
// controller's Debug calls on the pointer path cost one atomic load.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// current holds the logger shared by controllers, renderers and the host
// integration. Pointer events arrive on platform goroutines, so it is
// swapped atomically.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes colorpick diagnostics to l. A nil l silences them
// again, which is also the initial state.
//
// Records are emitted at two levels:
//   - [slog.LevelDebug]: pointer state changes, inverse lookups that found
//     no pixel, and field renders with the render cache counters
//   - [slog.LevelWarn]: color strings that failed to parse and were
//     replaced by [DefaultColor]
//
// To watch a drag from the command line:
//
//	colorpick.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by [SetLogger]. integration/gpuhost logs
// through it as well. Safe for concurrent use.
func Logger() *slog.Logger {
	return current.Load()
}
