package text

// Option configures Build.
type Option func(*buildConfig)

// buildConfig holds configuration for Build.
type buildConfig struct {
	hinting    Hinting
	parserName string
}

// defaultBuildConfig returns the default build configuration.
func defaultBuildConfig() buildConfig {
	return buildConfig{
		hinting:    HintingFull,
		parserName: defaultParserName,
	}
}

// WithHinting sets the hinting mode used when rasterizing.
// Parsers that do not support hinting ignore it.
func WithHinting(h Hinting) Option {
	return func(c *buildConfig) {
		c.hinting = h
	}
}

// WithParser specifies the font parser backend.
// The default is "sfnt" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) Option {
	return func(c *buildConfig) {
		c.parserName = name
	}
}

// hintingSetter is implemented by rasterizers that honor WithHinting.
type hintingSetter interface {
	SetHinting(Hinting)
}
