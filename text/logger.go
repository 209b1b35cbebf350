package text

import (
	"log/slog"
	"sync/atomic"
)

var discard = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(discard)
}

// SetLogger sets the logger used while building font caches.
// tterm.SetLogger calls it; nil silences the package.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	current.Store(l)
}

func logger() *slog.Logger {
	return current.Load()
}
