// SPDX-License-Identifier: MIT

package nearest

import (
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/hextile/logging"
)

// DefaultSparseCellsPerSeed is the cells-per-seed ratio from which Auto
// prefers the kd-tree.
const DefaultSparseCellsPerSeed = 1 << 15

// Option mutates Options. Options are applied left to right.
type Option func(*Options)

// Options is the resolved labeling configuration.
type Options struct {
	// Sampling holds the (z, y, x) axis weights of the distance metric.
	Sampling [3]float64
	// Workers is the goroutine count; 0 means runtime.GOMAXPROCS(0).
	Workers int
	// Strategy selects the algorithm.
	Strategy Strategy
	// SparseCellsPerSeed is the Auto threshold for the kd-tree.
	SparseCellsPerSeed int
	// Logger receives strategy and timing messages.
	Logger logging.Logger
}

// DefaultOptions returns isotropic sampling, GOMAXPROCS workers, Auto.
func DefaultOptions() Options {
	return Options{
		Sampling:           [3]float64{1, 1, 1},
		Strategy:           Auto,
		SparseCellsPerSeed: DefaultSparseCellsPerSeed,
		Logger:             logging.Nop(),
	}
}

// WithSampling sets the (z, y, x) axis weights.
func WithSampling(z, y, x float64) Option {
	return func(o *Options) { o.Sampling = [3]float64{z, y, x} }
}

// WithWorkers sets the goroutine count; 0 restores the default.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithStrategy forces or re-enables automatic strategy selection.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithSparseCellsPerSeed tunes the Auto threshold; n <= 0 restores the default.
func WithSparseCellsPerSeed(n int) Option {
	return func(o *Options) { o.SparseCellsPerSeed = n }
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

func (o *Options) validate() error {
	for i, w := range o.Sampling {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return fmt.Errorf("%w: %s=%g", ErrInvalidSampling, [3]string{"z", "y", "x"}[i], w)
		}
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidWorkers, o.Workers)
	}
	if !o.Strategy.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStrategy, o.Strategy)
	}
	return nil
}

func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o *Options) sparseThreshold() int {
	if o.SparseCellsPerSeed > 0 {
		return o.SparseCellsPerSeed
	}
	return DefaultSparseCellsPerSeed
}
