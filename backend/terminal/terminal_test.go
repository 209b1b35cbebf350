package terminal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/tterm/tterm"
	"github.com/tterm/tterm/backend"
	"github.com/tterm/tterm/backend/internal/input"
)

// recordingHandler edits a plain string and renders a vertical gradient.
type recordingHandler struct {
	text      string
	submitted []string
	frames    [][2]int
}

func (h *recordingHandler) InsertText(s string) bool {
	h.text += s
	return s != ""
}

func (h *recordingHandler) DeleteBackward() bool {
	if h.text == "" {
		return false
	}
	r := []rune(h.text)
	h.text = string(r[:len(r)-1])
	return true
}

func (h *recordingHandler) Submit() bool {
	h.submitted = append(h.submitted, h.text)
	h.text = ""
	return true
}

func (h *recordingHandler) Frame(w, ht int) (*tterm.FrameBuffer, bool) {
	h.frames = append(h.frames, [2]int{w, ht})
	if w <= 0 || ht <= 0 {
		return nil, false
	}
	return gradient(w, ht), true
}

// gradient returns a frame whose row y is Gray(16*y).
func gradient(w, h int) *tterm.FrameBuffer {
	fb := tterm.NewFrameBuffer(w, h)
	for i := range fb.Pix() {
		fb.Pix()[i] = uint32(tterm.Gray(uint8(16 * (i / w))))
	}
	return fb
}

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func checkCell(t *testing.T, s tcell.Screen, x, y int, top, bottom tterm.Pixel) {
	t.Helper()
	mainc, _, style, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	if mainc != halfBlock {
		t.Errorf("cell (%d,%d) = %q, want %q", x, y, mainc, halfBlock)
	}
	fg, bg, _ := style.Decompose()
	if fg != cellColor(top) || bg != cellColor(bottom) {
		t.Errorf("cell (%d,%d) colours = %v/%v, want %v/%v", x, y, fg, bg, cellColor(top), cellColor(bottom))
	}
}

func TestPaint(t *testing.T) {
	s := newScreen(t, 4, 3)
	Paint(s, gradient(4, 5))

	for x := range 4 {
		checkCell(t, s, x, 0, tterm.Gray(0), tterm.Gray(16))
		checkCell(t, s, x, 1, tterm.Gray(32), tterm.Gray(48))
		// Odd height: the last cell repeats its top pixel.
		checkCell(t, s, x, 2, tterm.Gray(64), tterm.Gray(64))
	}
}

func TestPaintLargerFrame(t *testing.T) {
	s := newScreen(t, 2, 1)
	Paint(s, gradient(10, 10)) // must not panic
	checkCell(t, s, 1, 0, tterm.Gray(0), tterm.Gray(16))
}

func TestRunEditing(t *testing.T) {
	s := newScreen(t, 10, 5)
	h := &recordingHandler{}

	s.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)
	s.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := NewWithScreen(s).Run(context.Background(), h); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	if h.text != "c" {
		t.Errorf("text = %q, want %q", h.text, "c")
	}
	if diff := cmp.Diff([]string{"a"}, h.submitted); diff != "" {
		t.Errorf("submitted (-want +got):\n%s", diff)
	}
	if len(h.frames) == 0 {
		t.Fatal("no frames requested")
	}
	for _, f := range h.frames {
		if f != [2]int{10, 10} {
			t.Errorf("frame size %v, want [10 10] (cols × 2·rows)", f)
		}
	}
	checkCell(t, s, 9, 4, tterm.Gray(128), tterm.Gray(144))
}

func TestRunCtrlC(t *testing.T) {
	s := newScreen(t, 4, 2)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	if err := NewWithScreen(s).Run(context.Background(), &recordingHandler{}); err != nil {
		t.Fatalf("Run() = %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	s := newScreen(t, 4, 2)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() {
		errc <- NewWithScreen(s).Run(ctx, &recordingHandler{})
	}()
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunNilHandler(t *testing.T) {
	s := newScreen(t, 4, 2)
	if err := NewWithScreen(s).Run(context.Background(), nil); !errors.Is(err, backend.ErrNilHandler) {
		t.Errorf("Run(nil) = %v, want ErrNilHandler", err)
	}
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(Name) {
		t.Errorf("%q backend not registered", Name)
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		key     tcell.Key
		pasting bool
		want    input.Key
	}{
		{tcell.KeyBackspace, false, input.KeyBackspace},
		{tcell.KeyBackspace2, false, input.KeyBackspace},
		{tcell.KeyEnter, false, input.KeyEnter},
		{tcell.KeyEnter, true, input.KeyOther},
		{tcell.KeyEscape, false, input.KeyEscape},
		{tcell.KeyTab, false, input.KeyOther},
	}
	for _, tt := range tests {
		if got := keyOf(tt.key, tt.pasting); got != tt.want {
			t.Errorf("keyOf(%v, pasting=%v) = %v, want %v", tt.key, tt.pasting, got, tt.want)
		}
	}
}
