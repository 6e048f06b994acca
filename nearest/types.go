// SPDX-License-Identifier: MIT

package nearest

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidSampling indicates a non-positive or non-finite axis weight.
	ErrInvalidSampling = errors.New("nearest: sampling weights must be finite and > 0")
	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("nearest: worker count must be >= 0")
	// ErrInvalidStrategy indicates an unknown strategy.
	ErrInvalidStrategy = errors.New("nearest: unknown strategy")
	// ErrSeedOutOfBounds indicates a seed outside the grid.
	ErrSeedOutOfBounds = errors.New("nearest: seed outside grid")
	// ErrInvalidSeedID indicates a non-positive or repeated seed id.
	ErrInvalidSeedID = errors.New("nearest: seed ids must be unique and > 0")
	// ErrDuplicateSeed indicates two seeds on one cell.
	ErrDuplicateSeed = errors.New("nearest: two seeds on one cell")
)

// Strategy selects the labeling algorithm.
type Strategy int

const (
	// Auto picks KDTree for very sparse seeds and Propagation otherwise.
	Auto Strategy = iota
	// Propagation runs the separable feature transform.
	Propagation
	// KDTree queries a kd-tree of seeds once per cell.
	KDTree
)

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Propagation:
		return "propagation"
	case KDTree:
		return "kdtree"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "propagation", "edt":
		return Propagation, nil
	case "kdtree", "kd-tree":
		return KDTree, nil
	}
	return Auto, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == Auto || s == Propagation || s == KDTree
}

// Stats describes one Label call.
type Stats struct {
	// Strategy is the algorithm that actually ran (never Auto).
	Strategy Strategy
	// Seeds is the number of seeds labeled.
	Seeds int
	// Empty is true when there were no seeds and the volume is all 0.
	Empty bool
	// Elapsed is the wall time spent labeling.
	Elapsed time.Duration
}
