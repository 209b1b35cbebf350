// Package snapshot renders a single frame and writes it as a PNG file.
// It needs no display and registers itself as "png".
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/tterm/tterm"
	"github.com/tterm/tterm/backend"
)

// Name is the registry name of the snapshot backend.
const Name = "png"

// Stdout is the output path that selects standard output.
const Stdout = "-"

var (
	// ErrTerminalOutput is returned when the PNG would be written to a
	// terminal.
	ErrTerminalOutput = errors.New("snapshot: refusing to write PNG to a terminal")

	// ErrEmptyFrame is returned when the requested size has zero area.
	ErrEmptyFrame = errors.New("snapshot: frame has zero area")
)

func init() {
	backend.Register(Name, func(o backend.Options) (backend.Backend, error) {
		return New(o.Output, o.Width, o.Height), nil
	})
}

// Snapshot implements backend.Backend by writing one frame.
type Snapshot struct {
	output        string
	width, height int

	stdout     io.Writer
	isTerminal func() bool
}

// New returns a backend writing a width×height frame to output, or to
// standard output when output is "-".
func New(output string, width, height int) *Snapshot {
	return &Snapshot{
		output: output,
		width:  width,
		height: height,
		stdout: os.Stdout,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// Name implements backend.Backend.
func (s *Snapshot) Name() string {
	return Name
}

// Run implements backend.Backend. It never reads input.
func (s *Snapshot) Run(ctx context.Context, h backend.Handler) error {
	if h == nil {
		return backend.ErrNilHandler
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.output == Stdout && s.isTerminal() {
		return ErrTerminalOutput
	}

	fb, ok := h.Frame(s.width, s.height)
	if !ok {
		return fmt.Errorf("%w: %dx%d", ErrEmptyFrame, s.width, s.height)
	}

	if err := s.write(fb); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	tterm.Logger().Info("snapshot: frame written", "output", s.output, "width", fb.Width(), "height", fb.Height())
	return nil
}

func (s *Snapshot) write(fb *tterm.FrameBuffer) error {
	if s.output == Stdout {
		return fb.WritePNG(s.stdout)
	}
	return fb.SavePNG(s.output)
}
