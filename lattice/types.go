// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"

	"github.com/katalvlaran/hextile/volume"
)

var (
	// ErrInvalidSide indicates a non-positive or non-finite side length.
	ErrInvalidSide = errors.New("lattice: side length must be finite and > 0")
	// ErrTooManyCandidates indicates a lattice far denser than the grid.
	ErrTooManyCandidates = errors.New("lattice: lattice denser than the grid")
)

// MaxSitesPerCell bounds the lattice sites visited per grid cell. Denser
// lattices put several sites on one voxel and only waste time.
const MaxSitesPerCell = 16

// Seed is a planned tessellation seed: a grid cell plus its region id.
// IDs start at 1; 0 is reserved for background.
type Seed struct {
	Pos volume.Point
	ID  int32
}
