package backend

import (
	"context"
	"errors"

	"github.com/tterm/tterm"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNilHandler is returned by Run when no handler is given.
	ErrNilHandler = errors.New("backend: nil handler")
)

// Handler receives input from a backend and produces frames for it.
//
// The bool results of the input methods report whether the visible text
// changed; the backend schedules a redraw when they return true.
// Backends call a Handler from a single goroutine.
type Handler interface {
	// InsertText appends decoded text typed by the user.
	InsertText(s string) bool

	// DeleteBackward removes the last character.
	DeleteBackward() bool

	// Submit completes the current line.
	Submit() bool

	// Frame renders the current text into a width×height framebuffer.
	// It returns false when the surface has zero area; the backend then
	// presents nothing.
	Frame(width, height int) (*tterm.FrameBuffer, bool)
}

// Options configures a backend at creation.
type Options struct {
	// Width and Height are the initial surface size in pixels, for
	// backends that choose their own size.
	Width  int
	Height int

	// Title is the window title.
	Title string

	// Output is the destination of snapshot backends.
	Output string
}

// Backend presents frames from a Handler and feeds it input until the
// user quits or ctx is cancelled.
type Backend interface {
	// Name returns the backend identifier (e.g., "window", "terminal").
	Name() string

	// Run drives h until the session ends. A nil error means the user
	// closed the session normally.
	Run(ctx context.Context, h Handler) error
}
