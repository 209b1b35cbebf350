package gpu

import (
	"context"
	"fmt"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/tterm/tterm"
	"github.com/tterm/tterm/backend"
	"github.com/tterm/tterm/backend/internal/input"
)

// Name is the registry name of the gogpu backend.
const Name = "gpu"

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTitle  = "tterm"
)

func init() {
	backend.Register(Name, func(o backend.Options) (backend.Backend, error) {
		return New(o), nil
	})
}

// textInput is implemented by event sources that deliver composed text.
type textInput interface {
	OnTextInput(fn func(text string))
}

// quitter is implemented by apps that can be closed programmatically.
type quitter interface {
	Quit()
}

// Window implements backend.Backend with a gogpu window.
type Window struct {
	width, height int
	title         string
}

// New returns a gogpu backend. Zero options fall back to an 800×600
// window titled "tterm".
func New(o backend.Options) *Window {
	w := &Window{width: o.Width, height: o.Height, title: o.Title}
	if w.width <= 0 {
		w.width = defaultWidth
	}
	if w.height <= 0 {
		w.height = defaultHeight
	}
	if w.title == "" {
		w.title = defaultTitle
	}
	return w
}

// Name implements backend.Backend.
func (w *Window) Name() string {
	return Name
}

// Run implements backend.Backend. It returns nil when the window is
// closed or Escape is pressed, and ctx.Err() when ctx is cancelled.
func (w *Window) Run(ctx context.Context, h backend.Handler) error {
	if h == nil {
		return backend.ErrNilHandler
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(w.title).
		WithSize(w.width, w.height).
		WithContinuousRender(false))

	s := &session{app: app, h: h}
	app.OnDraw(s.draw)

	events := app.EventSource()
	events.OnKeyPress(s.onKey)
	if ti, ok := any(events).(textInput); ok {
		ti.OnTextInput(s.onText)
	} else {
		tterm.Logger().Warn("gpu: event source delivers no text input; typing is disabled")
	}

	app.OnClose(func() {
		s.stopAnimation()
		s.p.release()
		tterm.Logger().Info("gpu: window closed")
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.quit()
		case <-done:
		}
	}()

	if err := app.Run(); err != nil {
		return fmt.Errorf("gpu: %w", err)
	}
	return ctx.Err()
}

// session is the state shared by the callbacks of one window.
type session struct {
	app    *gogpu.App
	h      backend.Handler
	p      presenter
	anim   *gogpu.AnimationToken
	frames int
}

// draw renders a frame at the current surface size and presents it.
// A minimized window has zero area and presents nothing.
func (s *session) draw(dc *gogpu.Context) {
	defer s.stopAnimation()

	if s.frames == 0 {
		attrs := []any{"backend", dc.Backend(), "width", dc.Width(), "height", dc.Height()}
		if provider := s.app.GPUContextProvider(); provider != nil {
			attrs = append(attrs, "format", provider.SurfaceFormat())
		}
		tterm.Logger().Info("gpu: window created", attrs...)
	}

	fb, ok := s.h.Frame(dc.Width(), dc.Height())
	if !ok {
		return
	}
	if err := s.p.present(drawer{dc.AsTextureDrawer()}, fb); err != nil {
		tterm.Logger().Error("gpu: present failed", "frame", s.frames, "err", err)
		return
	}
	s.frames++
}

func (s *session) onKey(key gpucontext.Key, _ gpucontext.Modifiers) {
	s.apply(input.Dispatch(s.h, keyOf(key), input.Press))
}

func (s *session) onText(text string) {
	s.apply(input.Text(s.h, text))
}

func (s *session) apply(r input.Result) {
	if r.Quit {
		s.quit()
		return
	}
	if r.Changed && s.anim == nil {
		// Keep the render loop awake until the next frame is drawn.
		s.anim = s.app.StartAnimation()
	}
}

func (s *session) stopAnimation() {
	if s.anim != nil {
		s.anim.Stop()
		s.anim = nil
	}
}

func (s *session) quit() {
	if q, ok := any(s.app).(quitter); ok {
		q.Quit()
		return
	}
	tterm.Logger().Warn("gpu: app cannot be closed programmatically; close the window")
}

func keyOf(k gpucontext.Key) input.Key {
	switch k {
	case gpucontext.KeyBackspace:
		return input.KeyBackspace
	case gpucontext.KeyEnter:
		return input.KeyEnter
	case gpucontext.KeyEscape:
		return input.KeyEscape
	}
	return input.KeyOther
}
