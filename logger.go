package gallery

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is read from texture loader goroutines as well as the game loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the gallery and by the gg
// rasterizer that paints the backdrop. By default nothing is logged.
// Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: scene construction, activation, resize
//   - [slog.LevelInfo]: session lifecycle
//   - [slog.LevelWarn]: image sources that failed to load
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l.With("component", "gg"))
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
