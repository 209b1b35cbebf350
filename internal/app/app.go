// Package app ties the line editor to the renderer. An App is the
// backend.Handler every presentation backend drives.
package app

import (
	"github.com/tterm/tterm"
	"github.com/tterm/tterm/backend"
	"github.com/tterm/tterm/internal/lineedit"
)

var _ backend.Handler = (*App)(nil)

// SubmitFunc receives each completed line.
type SubmitFunc func(line string)

// Option configures an App.
type Option func(*App)

// WithText sets the initial content of the line.
func WithText(s string) Option {
	return func(a *App) {
		a.initial = s
	}
}

// WithSubmitFunc registers fn to receive submitted lines.
func WithSubmitFunc(fn SubmitFunc) Option {
	return func(a *App) {
		a.onSubmit = fn
	}
}

// App holds the state of one editing session.
type App struct {
	renderer *tterm.Renderer
	line     *lineedit.Buffer
	initial  string
	onSubmit SubmitFunc
}

// New returns an App rendering with r.
func New(r *tterm.Renderer, opts ...Option) *App {
	a := &App{renderer: r}
	for _, opt := range opts {
		opt(a)
	}
	a.line = lineedit.New(a.initial)
	return a
}

// InsertText implements backend.Handler.
func (a *App) InsertText(s string) bool {
	changed := a.line.Append(s)
	if changed {
		tterm.Logger().Debug("app: text received", "text", s, "length", a.line.Len())
	}
	return changed
}

// DeleteBackward implements backend.Handler.
func (a *App) DeleteBackward() bool {
	return a.line.DeleteLast()
}

// Submit implements backend.Handler. The line is handed to the submit
// function, logged, and cleared.
func (a *App) Submit() bool {
	n := a.line.Len()
	s := a.line.Submit()
	tterm.Logger().Info("app: line submitted", "text", s, "length", n)
	if a.onSubmit != nil {
		a.onSubmit(s)
	}
	return s != ""
}

// Frame implements backend.Handler.
func (a *App) Frame(width, height int) (*tterm.FrameBuffer, bool) {
	return a.renderer.Render(a.line.String(), width, height)
}

// Text returns the current line.
func (a *App) Text() string {
	return a.line.String()
}
