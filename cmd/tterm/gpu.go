//go:build !nogpu

package main

// The gogpu backend is pure Go. Build with -tags nogpu to leave it out.
import _ "github.com/tterm/tterm/backend/gpu"
