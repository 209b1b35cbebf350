// Package backend connects the text renderer to a presentation surface.
//
// A backend owns the event loop: it turns platform input into calls on a
// [Handler] and presents the frames the Handler returns. The core never
// sees a window or terminal.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime by
// name. Import the implementations you want:
//
//	import (
//		_ "github.com/tterm/tterm/backend/gpu"      // "gpu"
//		_ "github.com/tterm/tterm/backend/opengl"   // "window"
//		_ "github.com/tterm/tterm/backend/snapshot" // "png"
//		_ "github.com/tterm/tterm/backend/terminal" // "terminal"
//	)
//
// # Usage
//
//	b, err := backend.New("window", backend.Options{Width: 800, Height: 600, Title: "tterm"})
//	if err != nil {
//		return err
//	}
//	return b.Run(ctx, handler)
//
// # Available Backends
//
//   - "window": GLFW window presented through OpenGL
//   - "gpu": gogpu window presented through WebGPU, no cgo
//   - "terminal": half-block preview in the terminal via tcell
//   - "png": renders one frame and writes it as a PNG
package backend
