//go:build !nowindow

package main

// The window backend needs cgo and OpenGL headers. Build with
// -tags nowindow to leave it out.
import _ "github.com/tterm/tterm/backend/opengl"
