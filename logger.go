package tterm

import (
	"log/slog"
	"sync/atomic"

	"github.com/tterm/tterm/text"
)

// discard is the logger used until SetLogger installs another.
var discard = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(discard)
}

// SetLogger routes the log output of tterm, its text package and its
// backends to l. A nil l silences them again, which is also the state a
// program starts in.
//
// Lifecycle events such as a built font cache or a submitted line are
// logged at Info, per-event detail at Debug, and glyphs that could not be
// rasterized at Warn.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	current.Store(l)
	text.SetLogger(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
