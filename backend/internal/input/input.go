// Package input turns key and text events into calls on a backend.Handler.
//
// Backends translate their platform key codes into a [Key] and an
// [Action] and leave the editing decisions to [Dispatch], so every
// surface edits the line the same way.
package input

import "github.com/tterm/tterm/backend"

// Key identifies the keys that edit or end a session. Every other key is
// [KeyOther].
type Key int

const (
	KeyOther Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
)

// Action is the transition that produced a key event.
type Action int

const (
	Press Action = iota
	Repeat
	Release
)

// Result is the outcome of one dispatched event.
type Result struct {
	// Changed reports that the visible text changed and a redraw is due.
	Changed bool

	// Quit reports that the user asked to end the session.
	Quit bool
}

// Dispatch applies a key event to h.
//
// Backspace deletes on press and on auto-repeat. Enter submits on the
// initial press only, so holding it does not submit empty lines. Escape
// asks to quit. Releases are ignored.
func Dispatch(h backend.Handler, k Key, a Action) Result {
	if a == Release {
		return Result{}
	}
	switch k {
	case KeyBackspace:
		return Result{Changed: h.DeleteBackward()}
	case KeyEnter:
		if a == Press {
			return Result{Changed: h.Submit()}
		}
	case KeyEscape:
		if a == Press {
			return Result{Quit: true}
		}
	}
	return Result{}
}

// Text forwards typed text to h. Empty text is dropped without a call.
func Text(h backend.Handler, s string) Result {
	if s == "" {
		return Result{}
	}
	return Result{Changed: h.InsertText(s)}
}
