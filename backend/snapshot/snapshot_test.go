package snapshot

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tterm/tterm"
	"github.com/tterm/tterm/backend"
)

type frameHandler struct{ fb *tterm.FrameBuffer }

func (frameHandler) InsertText(string) bool { return false }
func (frameHandler) DeleteBackward() bool   { return false }
func (frameHandler) Submit() bool           { return false }

func (h frameHandler) Frame(w, ht int) (*tterm.FrameBuffer, bool) {
	if w <= 0 || ht <= 0 {
		return nil, false
	}
	h.fb.Resize(w, ht)
	h.fb.Clear(tterm.Background)
	h.fb.Pix()[2*w+1] = uint32(tterm.Gray(0xc0))
	return h.fb, true
}

func newHandler() frameHandler {
	return frameHandler{fb: tterm.NewFrameBuffer(0, 0)}
}

func checkPNG(t *testing.T, img image.Image, want *tterm.FrameBuffer) {
	t.Helper()
	if img.Bounds() != want.Bounds() {
		t.Fatalf("PNG bounds = %v, want %v", img.Bounds(), want.Bounds())
	}
	for y := range want.Height() {
		for x := range want.Width() {
			if got := tterm.FromColor(img.At(x, y)); got != want.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want.Pixel(x, y))
			}
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	h := newHandler()

	if err := New(path, 6, 4).Run(context.Background(), h); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, img, h.fb)
}

func TestWriteStdout(t *testing.T) {
	var buf bytes.Buffer
	s := New(Stdout, 3, 3)
	s.stdout = &buf
	s.isTerminal = func() bool { return false }
	h := newHandler()

	if err := s.Run(context.Background(), h); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	checkPNG(t, img, h.fb)
}

func TestRefuseTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := New(Stdout, 3, 3)
	s.stdout = &buf
	s.isTerminal = func() bool { return true }

	if err := s.Run(context.Background(), newHandler()); !errors.Is(err, ErrTerminalOutput) {
		t.Errorf("Run() = %v, want ErrTerminalOutput", err)
	}
	if buf.Len() != 0 {
		t.Error("PNG bytes written to a terminal")
	}
}

func TestErrors(t *testing.T) {
	if err := New("x.png", 0, 3).Run(context.Background(), newHandler()); !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("zero width: Run() = %v, want ErrEmptyFrame", err)
	}
	if err := New("x.png", 3, 3).Run(context.Background(), nil); !errors.Is(err, backend.ErrNilHandler) {
		t.Errorf("nil handler: Run() = %v, want ErrNilHandler", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New("x.png", 3, 3).Run(ctx, newHandler()); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: Run() = %v, want context.Canceled", err)
	}

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "out.png")
	if err := New(missing, 3, 3).Run(context.Background(), newHandler()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("bad path: Run() = %v, want os.ErrNotExist", err)
	}
}

func TestRegistered(t *testing.T) {
	b, err := backend.New(Name, backend.Options{Width: 2, Height: 2, Output: "a.png"})
	if err != nil {
		t.Fatal(err)
	}
	if b.Name() != Name {
		t.Errorf("Name() = %q", b.Name())
	}
}
