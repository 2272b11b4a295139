package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"hexmesh/internal/hexagon"
)

// Config holds conversion options and output settings.
type Config struct {
	// Conversion. Pointers distinguish "unset" from an explicit false/0.
	HexOnly    *bool    `json:"hex_only"`
	Hollow     *bool    `json:"hollow"`
	KeepBorder *bool    `json:"keep_border"`
	Continuity *float64 `json:"continuity"`
	Offset     float64  `json:"offset"`
	Strict     bool     `json:"strict"`

	// Output
	OutputDir   string `json:"output_dir"`
	Suffix      string `json:"suffix"`
	Preview     bool   `json:"preview"`
	PreviewSize int    `json:"preview_size"`
	Supersample int    `json:"supersample"`
	Swatch      string `json:"swatch"`
	Workers     int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Workers   int
	Offset    float64
	KeepAll   bool
	Solid     bool
	Strict    bool
	Preview   bool
	Swatch    string
}

// Resolve applies CLI overrides and fills every unset field with its default.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Offset > 0 {
		c.Offset = flags.Offset
	}
	if flags.KeepAll {
		c.HexOnly = boolPtr(false)
	}
	if flags.Solid {
		c.Hollow = boolPtr(false)
	}
	if flags.Strict {
		c.Strict = true
	}
	if flags.Preview {
		c.Preview = true
	}
	if flags.Swatch != "" {
		c.Swatch = flags.Swatch
	}

	def := hexagon.DefaultOptions()
	if c.HexOnly == nil {
		c.HexOnly = boolPtr(def.HexOnly)
	}
	if c.Hollow == nil {
		c.Hollow = boolPtr(def.Hollow)
	}
	if c.KeepBorder == nil {
		c.KeepBorder = boolPtr(def.KeepBorder)
	}
	if c.Continuity == nil {
		v := def.Continuity
		c.Continuity = &v
	}
	if c.Offset <= 0 {
		c.Offset = def.Offset
	}

	if c.OutputDir == "" {
		c.OutputDir = "hexagons"
	}
	if c.Suffix == "" {
		c.Suffix = "_hex"
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Options converts a resolved config into pipeline options.
func (c *Config) Options() hexagon.Options {
	return hexagon.Options{
		HexOnly:    *c.HexOnly,
		Hollow:     *c.Hollow,
		Offset:     c.Offset,
		Continuity: *c.Continuity,
		KeepBorder: *c.KeepBorder,
		Strict:     c.Strict,
	}
}

func boolPtr(b bool) *bool {
	return &b
}
