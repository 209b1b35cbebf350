package tterm

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r, err := tterm.NewRenderer(cache, tterm.WithBackground(tterm.RGB(0, 0, 0)))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	background Pixel
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		background: Background,
	}
}

// WithBackground sets the colour every frame is cleared to.
func WithBackground(c Pixel) RendererOption {
	return func(o *rendererOptions) {
		o.background = c
	}
}
