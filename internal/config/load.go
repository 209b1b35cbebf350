package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads the file at path over Default. Keys the file omits keep
// their default; unknown keys are an error. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func Load(path string) (Config, error) {
	c := Default()
	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := c.decode(path, data); err != nil {
		return c, err
	}
	return c, nil
}

// decode merges data into c, choosing the format from the extension of
// path.
func (c *Config) decode(path string, data []byte) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		err = d.Decode(c)
	case ".yaml", ".yml", "":
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		err = d.Decode(c)
		if errors.Is(err, io.EOF) {
			// Empty document.
			err = nil
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}
