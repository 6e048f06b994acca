// SPDX-License-Identifier: MIT

package regions

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hextile/volume"
)

var (
	// ErrNilLabels indicates a nil or malformed label volume.
	ErrNilLabels = errors.New("regions: label volume is nil or malformed")
	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("regions: workers must be >= 0")
)

// Connectivity selects which neighbours touch.
type Connectivity int

const (
	// Conn6 links cells sharing a face.
	Conn6 Connectivity = iota
	// Conn26 links cells sharing a face, an edge or a corner.
	Conn26
)

// Region summarizes one label.
type Region struct {
	ID    int32
	Cells int
	// Centroid is the mean (z, y, x) cell coordinate.
	Centroid [3]float64
	// Min and Max bound the region inclusively.
	Min, Max volume.Point
}

// offsets returns the neighbour offsets (dz, dy, dx) for conn. With half
// set only the lexicographically positive half is returned, so every
// unordered neighbour pair is visited once.
func offsets(conn Connectivity, half bool) [][3]int {
	var out [][3]int
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nonzero := abs(dz) + abs(dy) + abs(dx)
				if nonzero == 0 || (conn == Conn6 && nonzero != 1) {
					continue
				}
				if half && [3]int{dz, dy, dx} != positive(dz, dy, dx) {
					continue
				}
				out = append(out, [3]int{dz, dy, dx})
			}
		}
	}
	return out
}

// positive returns the offset or its negation, whichever has a positive
// first non-zero component.
func positive(dz, dy, dx int) [3]int {
	switch {
	case dz != 0:
		if dz < 0 {
			return [3]int{-dz, -dy, -dx}
		}
	case dy != 0:
		if dy < 0 {
			return [3]int{-dz, -dy, -dx}
		}
	case dx < 0:
		return [3]int{-dz, -dy, -dx}
	}
	return [3]int{dz, dy, dx}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func check(l *volume.Labels) error {
	if l == nil {
		return ErrNilLabels
	}
	if err := l.Dims.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrNilLabels, err)
	}
	if len(l.Data) != l.Dims.Cells() {
		return fmt.Errorf("%w: %d cells for %s", ErrNilLabels, len(l.Data), l.Dims)
	}
	return nil
}
