// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/hextile/logging"
	"github.com/katalvlaran/hextile/nearest"
	"github.com/katalvlaran/hextile/tessellate"
	"github.com/katalvlaran/hextile/volume"
)

var (
	errNoOutput = errors.New("hextile: no output file given")
	errBadDims  = errors.New("hextile: dims must be D,H,W or H,W positive integers")
)

// Config is the TOML run description. Flags given on the command line
// replace the matching fields.
type Config struct {
	Side        float64 `toml:"side"`
	Dims        []int   `toml:"dims"` // depth, height, width
	PlanarScale float64 `toml:"planar_scale"`
	DepthScale  float64 `toml:"depth_scale"`
	Shape       string  `toml:"shape"`
	Mask        string  `toml:"mask"`
	Out         string  `toml:"out"`
	Zstd        bool    `toml:"zstd"`
	Workers     int     `toml:"workers"`
	Strategy    string  `toml:"strategy"`
	MaxCells    int     `toml:"max_cells"`

	Logging logging.Config `toml:"logging"`
}

// defaultConfig matches the library defaults.
func defaultConfig() Config {
	return Config{
		PlanarScale: 1,
		DepthScale:  1,
		Shape:       tessellate.Prism.String(),
		Strategy:    nearest.Auto.String(),
		MaxCells:    volume.DefaultMaxCells,
		Logging:     logging.Config{Level: logging.InfoLevel.String()},
	}
}

// loadConfig decodes filename over the defaults.
func loadConfig(filename string) (Config, error) {
	cfg := defaultConfig()
	if filename == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(filename, &cfg); err != nil {
		return cfg, fmt.Errorf("could not decode TOML config %q: %w", filename, err)
	}
	return cfg, nil
}

// parseDims accepts "D,H,W" or "H,W" (depth 1).
func parseDims(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q", errBadDims, s)
	}
	dims := make([]int, 0, 3)
	if len(parts) == 2 {
		dims = append(dims, 1)
	}
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %q", errBadDims, s)
		}
		dims = append(dims, n)
	}
	return dims, nil
}

// Grid returns the configured grid shape.
func (c *Config) Grid() (volume.Dims, error) {
	switch len(c.Dims) {
	case 2:
		return volume.Dims{Depth: 1, Height: c.Dims[0], Width: c.Dims[1]}, nil
	case 3:
		return volume.Dims{Depth: c.Dims[0], Height: c.Dims[1], Width: c.Dims[2]}, nil
	}
	return volume.Dims{}, fmt.Errorf("%w: got %d values", errBadDims, len(c.Dims))
}

// Validate checks what Generate cannot: the selectors and the output path.
// Numeric ranges are left to Generate so the errors match the library's.
func (c *Config) Validate() error {
	if _, err := c.Grid(); err != nil {
		return err
	}
	if _, err := tessellate.ParseShape(c.Shape); err != nil {
		return err
	}
	if _, err := nearest.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Out == "" {
		return errNoOutput
	}
	return nil
}

// options translates c into Generate options; c must be valid.
func (c *Config) options(mask *volume.Mask, log logging.Logger) []tessellate.Option {
	shape, _ := tessellate.ParseShape(c.Shape)
	strategy, _ := nearest.ParseStrategy(c.Strategy)
	return []tessellate.Option{
		tessellate.WithMask(mask),
		tessellate.WithPlanarScale(c.PlanarScale),
		tessellate.WithDepthScale(c.DepthScale),
		tessellate.WithShape(shape),
		tessellate.WithWorkers(c.Workers),
		tessellate.WithStrategy(strategy),
		tessellate.WithMaxCells(c.MaxCells),
		tessellate.WithLogger(log),
	}
}
