// Package gpu presents frames in a gogpu window.
//
// Each frame is packed into an 8-bit RGBA texture, uploaded through the
// gpucontext texture interfaces and drawn at the window origin. gogpu is
// pure Go, so this backend needs no cgo; it talks to the GPU through
// gogpu/wgpu.
//
// Rendering is event driven: the window stays idle until input changes
// the line or the surface is resized.
//
// The backend registers itself as "gpu".
package gpu
