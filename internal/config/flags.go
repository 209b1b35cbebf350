package config

import (
	"github.com/spf13/pflag"
)

// DefineFlags registers one flag per setting on fs, with Default values
// as flag defaults.
func DefineFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP("font", "f", d.Font, "TTF/OTF font file (default: embedded Go Mono)")
	fs.Float64P("size", "s", d.Size, "Point size in pixels per em")
	fs.String("hinting", d.Hinting, "Font hinting: none, vertical, full")
	fs.Int("width", d.Width, "Initial surface width in pixels")
	fs.Int("height", d.Height, "Initial surface height in pixels")
	fs.String("title", d.Title, "Window title")
	fs.StringP("backend", "b", d.Backend, "Presentation backend: window, gpu, terminal, png")
	fs.StringP("text", "t", d.Text, "Initial text")
	fs.StringP("output", "o", d.Output, `PNG output path for the png backend ("-" for stdout)`)
	fs.String("background", d.Background, "Background colour as #rrggbb")
	fs.String("log-level", d.LogLevel, "Log level: debug, info, warn, error")
}

// BindFlags copies the flags the user set on fs into c. Flags left at
// their default do not override values from a config file.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	var err error
	str := func(name string, dst *string) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetString(name)
		}
	}
	integer := func(name string, dst *int) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetInt(name)
		}
	}

	str("font", &c.Font)
	if err == nil && fs.Changed("size") {
		c.Size, err = fs.GetFloat64("size")
	}
	str("hinting", &c.Hinting)
	integer("width", &c.Width)
	integer("height", &c.Height)
	str("title", &c.Title)
	str("backend", &c.Backend)
	str("text", &c.Text)
	str("output", &c.Output)
	str("background", &c.Background)
	str("log-level", &c.LogLevel)

	return err
}
