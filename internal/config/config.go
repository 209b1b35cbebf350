package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/tterm/tterm"
	"github.com/tterm/tterm/text"
)

// Backend names accepted by the backend setting.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
	BackendPNG      = "png"
	BackendGPU      = "gpu"
)

// Backends lists every valid backend name.
var Backends = []string{BackendWindow, BackendGPU, BackendTerminal, BackendPNG}

// Config holds every setting of the tterm command.
type Config struct {
	// Font is a TTF/OTF path. Empty selects the embedded Go Mono.
	Font string `yaml:"font" toml:"font"`
	// Size is the point size, equal to pixels per em.
	Size float64 `yaml:"size" toml:"size"`
	// Hinting is none, vertical or full.
	Hinting string `yaml:"hinting" toml:"hinting"`

	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`

	Backend string `yaml:"backend" toml:"backend"`
	// Text is the initial content of the line.
	Text string `yaml:"text" toml:"text"`
	// Output is the PNG destination of the png backend; "-" is stdout.
	Output string `yaml:"output" toml:"output"`

	// Background is a "#rrggbb" clear colour.
	Background string `yaml:"background" toml:"background"`
	LogLevel   string `yaml:"log_level" toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Size:       17,
		Hinting:    "full",
		Width:      800,
		Height:     600,
		Title:      "tterm",
		Backend:    BackendWindow,
		Output:     "tterm.png",
		Background: tterm.Background.String(),
		LogLevel:   "warn",
	}
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(key string, value any, msg string) {
		errs = append(errs, &ValidationError{Key: key, Value: value, Message: msg})
	}

	if c.Size <= 0 || math.IsNaN(c.Size) || math.IsInf(c.Size, 0) {
		invalid("size", c.Size, "must be a positive number")
	}
	if c.Width <= 0 {
		invalid("width", c.Width, "must be positive")
	}
	if c.Height <= 0 {
		invalid("height", c.Height, "must be positive")
	}
	if !slices.Contains(Backends, c.Backend) {
		invalid("backend", c.Backend, "must be one of "+strings.Join(Backends, ", "))
	}
	if c.Backend == BackendPNG && c.Output == "" {
		invalid("output", c.Output, "required by the png backend")
	}
	if _, err := c.BackgroundPixel(); err != nil {
		invalid("background", c.Background, err.Error())
	}
	if _, err := c.Level(); err != nil {
		invalid("log_level", c.LogLevel, "must be debug, info, warn or error")
	}
	if _, err := c.FontHinting(); err != nil {
		invalid("hinting", c.Hinting, "must be none, vertical or full")
	}

	return errors.Join(errs...)
}

// BackgroundPixel parses Background.
func (c *Config) BackgroundPixel() (tterm.Pixel, error) {
	return tterm.ParseColor(c.Background)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

// FontHinting parses Hinting.
func (c *Config) FontHinting() (text.Hinting, error) {
	switch strings.ToLower(c.Hinting) {
	case "none":
		return text.HintingNone, nil
	case "vertical":
		return text.HintingVertical, nil
	case "full", "":
		return text.HintingFull, nil
	default:
		return text.HintingNone, fmt.Errorf("unknown hinting %q", c.Hinting)
	}
}
