// Package terminal previews the rendered text inside a terminal.
//
// Each character cell shows two framebuffer pixels stacked vertically: the
// upper half block '▀' is drawn with the top pixel as foreground and the
// bottom pixel as background, so a cols×rows terminal presents a
// cols×(2·rows) frame. A true-colour terminal is needed for exact gray
// levels; tcell approximates on smaller palettes.
//
// The backend registers itself as "terminal".
package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tterm/tterm"
	"github.com/tterm/tterm/backend"
	"github.com/tterm/tterm/backend/internal/input"
)

// Name is the registry name of the terminal backend.
const Name = "terminal"

// halfBlock is U+2580 UPPER HALF BLOCK.
const halfBlock = '▀'

func init() {
	backend.Register(Name, func(backend.Options) (backend.Backend, error) {
		return New()
	})
}

// Terminal implements backend.Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	owned  bool // Run initializes and finalizes the screen
}

// New creates a terminal backend on the process's controlling terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return &Terminal{screen: screen, owned: true}, nil
}

// NewWithScreen creates a terminal backend on an already initialized
// screen. Run neither initializes nor finalizes it.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Name implements backend.Backend.
func (t *Terminal) Name() string {
	return Name
}

// Run implements backend.Backend. It returns nil when the user presses
// Escape or Ctrl-C, and ctx.Err() when ctx is cancelled.
func (t *Terminal) Run(ctx context.Context, h backend.Handler) error {
	if h == nil {
		return backend.ErrNilHandler
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.owned {
		if err := t.screen.Init(); err != nil {
			return fmt.Errorf("terminal: init screen: %w", err)
		}
		defer t.screen.Fini()
	}
	t.screen.HideCursor()
	t.screen.EnablePaste()
	defer t.screen.DisablePaste()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	w, rows := t.screen.Size()
	tterm.Logger().Info("terminal: session started", "cols", w, "rows", rows)
	t.draw(h)

	pasting := false
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return nil
		}

		redraw := false
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			redraw = true

		case *tcell.EventPaste:
			pasting = ev.Start()

		case *tcell.EventKey:
			r := keyEvent(h, ev, pasting)
			if r.Quit {
				return nil
			}
			redraw = r.Changed

		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if redraw {
			t.draw(h)
		}
	}
}

// keyEvent applies ev to h. Ctrl-C quits like Escape. Newlines inside a
// paste do not submit.
func keyEvent(h backend.Handler, ev *tcell.EventKey, pasting bool) input.Result {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return input.Result{Quit: true}
	case tcell.KeyRune:
		return input.Text(h, string(ev.Rune()))
	}
	return input.Dispatch(h, keyOf(ev.Key(), pasting), input.Press)
}

func keyOf(k tcell.Key, pasting bool) input.Key {
	switch k {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.KeyBackspace
	case tcell.KeyEnter:
		if !pasting {
			return input.KeyEnter
		}
	case tcell.KeyEscape:
		return input.KeyEscape
	}
	return input.KeyOther
}

// draw requests a frame the size of the screen and shows it.
func (t *Terminal) draw(h backend.Handler) {
	cols, rows := t.screen.Size()
	fb, ok := h.Frame(cols, rows*2)
	if !ok {
		t.screen.Clear()
		t.screen.Show()
		return
	}
	Paint(t.screen, fb)
	t.screen.Show()
}

// Paint writes fb into the cells of screen, two pixel rows per cell.
// Pixels beyond the screen are dropped; cells beyond fb are left alone.
func Paint(screen tcell.Screen, fb *tterm.FrameBuffer) {
	cols, rows := screen.Size()
	cols = min(cols, fb.Width())
	rows = min(rows, (fb.Height()+1)/2)

	for y := range rows {
		for x := range cols {
			top := fb.Pixel(x, 2*y)
			bottom := top
			if 2*y+1 < fb.Height() {
				bottom = fb.Pixel(x, 2*y+1)
			}
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func cellColor(p tterm.Pixel) tcell.Color {
	return tcell.NewRGBColor(int32(p.R()), int32(p.G()), int32(p.B()))
}
