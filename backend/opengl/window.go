// Package opengl presents frames in a GLFW window through OpenGL 4.1.
//
// The CPU framebuffer is uploaded to a texture and blitted to the default
// framebuffer; no shaders are involved. The window redraws only when an
// event arrives.
//
// GLFW must run on the main thread: call runtime.LockOSThread from an
// init function of package main and call Run from the main goroutine.
//
// The backend registers itself as "window".
package opengl

import (
	"context"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/tterm/tterm"
	"github.com/tterm/tterm/backend"
	"github.com/tterm/tterm/backend/internal/input"
)

// Name is the registry name of the window backend.
const Name = "window"

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

// Window implements backend.Backend with a GLFW window.
type Window struct {
	width, height int
	title         string
}

// New returns a window backend. Zero options fall back to an 800×600
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

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("opengl: glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		return fmt.Errorf("opengl: create window: %w", err)
	}
	defer win.Destroy()

	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl: gl init: %w", err)
	}
	tterm.Logger().Info("opengl: window created",
		"title", w.title, "width", w.width, "height", w.height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	p := newPresenter()
	defer p.delete()

	s := &session{win: win, h: h, p: p, dirty: true}
	win.SetCharCallback(s.onChar)
	win.SetKeyCallback(s.onKey)
	win.SetFramebufferSizeCallback(s.onResize)
	win.SetRefreshCallback(s.onRefresh)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			glfw.PostEmptyEvent()
		case <-done:
		}
	}()

	for !win.ShouldClose() {
		if s.dirty {
			s.redraw()
		}
		glfw.WaitEvents()
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	tterm.Logger().Info("opengl: window closed")
	return nil
}

// session is the state shared by the GLFW callbacks of one window.
type session struct {
	win   *glfw.Window
	h     backend.Handler
	p     *presenter
	dirty bool
}

func (s *session) onChar(_ *glfw.Window, r rune) {
	s.apply(input.Text(s.h, string(r)))
}

func (s *session) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	s.apply(input.Dispatch(s.h, keyOf(key), actionOf(action)))
}

func (s *session) apply(r input.Result) {
	if r.Changed {
		s.dirty = true
	}
	if r.Quit {
		s.win.SetShouldClose(true)
	}
}

func keyOf(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyBackspace:
		return input.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return input.KeyEnter
	case glfw.KeyEscape:
		return input.KeyEscape
	}
	return input.KeyOther
}

func actionOf(a glfw.Action) input.Action {
	switch a {
	case glfw.Press:
		return input.Press
	case glfw.Repeat:
		return input.Repeat
	}
	return input.Release
}

func (s *session) onResize(_ *glfw.Window, width, height int) {
	tterm.Logger().Debug("opengl: framebuffer resized", "width", width, "height", height)
	s.dirty = true
}

func (s *session) onRefresh(*glfw.Window) {
	s.dirty = true
}

// redraw renders a frame at the current framebuffer size and presents it.
// A minimized window has zero area and presents nothing.
func (s *session) redraw() {
	s.dirty = false

	width, height := s.win.GetFramebufferSize()
	fb, ok := s.h.Frame(width, height)
	if !ok {
		return
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	s.p.present(fb)
	s.win.SwapBuffers()
}
