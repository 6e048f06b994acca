// SPDX-License-Identifier: MIT

package tessellate

import (
	"github.com/katalvlaran/hextile/logging"
	"github.com/katalvlaran/hextile/nearest"
	"github.com/katalvlaran/hextile/relabel"
	"github.com/katalvlaran/hextile/volume"
)

// Option mutates Options. Options are applied left to right.
type Option func(*Options)

// Options is the resolved Generate configuration. Values are checked by
// Generate, not by the WithX constructors.
type Options struct {
	Mask               *volume.Mask
	PlanarScale        float64
	DepthScale         float64
	Shape              Shape
	Workers            int
	Strategy           nearest.Strategy
	SparseCellsPerSeed int
	MaxCells           int
	MaxTableEntries    int
	Logger             logging.Logger
}

// DefaultOptions returns unit scales, the prism shape, automatic strategy
// and the default volume guard.
func DefaultOptions() Options {
	return Options{
		PlanarScale:        1,
		DepthScale:         1,
		Shape:              Prism,
		Strategy:           nearest.Auto,
		SparseCellsPerSeed: nearest.DefaultSparseCellsPerSeed,
		MaxCells:           volume.DefaultMaxCells,
		MaxTableEntries:    relabel.DefaultMaxTableEntries,
		Logger:             logging.Nop(),
	}
}

// WithMask excludes masked cells; the mask must be congruent to the grid.
func WithMask(m *volume.Mask) Option {
	return func(o *Options) { o.Mask = m }
}

// WithPlanarScale divides the side length on the y and x axes.
func WithPlanarScale(s float64) Option {
	return func(o *Options) { o.PlanarScale = s }
}

// WithDepthScale divides the side length on the z axis.
func WithDepthScale(s float64) Option {
	return func(o *Options) { o.DepthScale = s }
}

// WithShape selects Prism or Dodecahedron for 3D grids.
func WithShape(s Shape) Option {
	return func(o *Options) { o.Shape = s }
}

// WithWorkers sets the labeling goroutine count; 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithStrategy forces a nearest-seed strategy.
func WithStrategy(s nearest.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithSparseCellsPerSeed tunes when Auto switches to the kd-tree.
func WithSparseCellsPerSeed(n int) Option {
	return func(o *Options) { o.SparseCellsPerSeed = n }
}

// WithMaxCells sets the volume guard; n <= 0 restores the default.
func WithMaxCells(n int) Option {
	return func(o *Options) { o.MaxCells = n }
}

// WithMaxTableEntries caps the relabel lookup table.
func WithMaxTableEntries(n int) Option {
	return func(o *Options) { o.MaxTableEntries = n }
}

// WithLogger routes diagnostics to l; nil silences them.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) { o.Logger = logging.OrNop(l) }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o *Options) nearestOptions(sampling [3]float64) []nearest.Option {
	return []nearest.Option{
		nearest.WithSampling(sampling[0], sampling[1], sampling[2]),
		nearest.WithWorkers(o.Workers),
		nearest.WithStrategy(o.Strategy),
		nearest.WithSparseCellsPerSeed(o.SparseCellsPerSeed),
		nearest.WithLogger(o.Logger),
	}
}
