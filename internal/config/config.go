// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"zonedrawer/internal/geom"
	"zonedrawer/internal/scenario"
)

type Config struct {
	// World rectangle shown on the canvas, in internal units.
	Bounds geom.Bounds `toml:"bounds"`
	// File units per internal unit.
	Scale float64 `toml:"scale"`
	// Grab radius of a vertex handle, in canvas micro-pixels.
	HandleRadius int `toml:"handle_radius"`
	// Start with angle snapping latched on.
	SnapByDefault bool `toml:"snap_by_default"`

	ScenarioDir string `toml:"scenario_dir"`

	ExportPath   string  `toml:"export_path"`
	ExportHeight int     `toml:"export_height"`
	FontSize     float64 `toml:"font_size"`

	LogLevel string `toml:"log_level"`
	LogDir   string `toml:"log_dir"`
}

var ErrInvalid = errors.New("invalid configuration")

// Default matches the field of the simulator task.
func Default() Config {
	return Config{
		Bounds:       geom.Bounds{XMin: -1200, XMax: 3700, YMin: -1500, YMax: 1500},
		Scale:        scenario.DefaultScale,
		HandleRadius: 3,
		ExportPath:   "zones.png",
		ExportHeight: 980,
		FontSize:     12,
		LogLevel:     "info",
	}
}

// DefaultPath is zonedrawer.toml in the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "zonedrawer.toml"
	}
	return filepath.Join(dir, "zonedrawer", "zonedrawer.toml")
}

// Load reads path on top of the defaults. A missing file is not an
// error unless required is set.
func Load(path string, required bool) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q: %w", path, und[0].String(), ErrInvalid)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %g must be positive", ErrInvalid, c.Scale)
	}
	if c.HandleRadius < 1 {
		return fmt.Errorf("%w: handle_radius %d must be at least 1", ErrInvalid, c.HandleRadius)
	}
	if c.ExportHeight < 16 {
		return fmt.Errorf("%w: export_height %d is too small", ErrInvalid, c.ExportHeight)
	}
	return nil
}
