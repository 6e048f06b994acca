// SPDX-License-Identifier: MIT

package tessellate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/hextile/nearest"
	"github.com/katalvlaran/hextile/volume"
)

var (
	// ErrConfiguration marks every rejected input; errors.Is also matches the
	// specific cause.
	ErrConfiguration = errors.New("tessellate: invalid configuration")
	// ErrInvalidScale indicates a non-positive or non-finite scale factor.
	ErrInvalidScale = errors.New("tessellate: scale factors must be finite and > 0")
	// ErrUnknownShape indicates an unsupported 3D shape.
	ErrUnknownShape = errors.New("tessellate: unknown 3D shape")
)

// Shape selects the 3D cell shape.
type Shape int

const (
	// Prism stacks hexagonal prisms (default).
	Prism Shape = iota
	// Dodecahedron packs rhombic dodecahedra on an FCC lattice.
	Dodecahedron
	// Hexagon is reported for 2D grids; it is not a valid WithShape value.
	Hexagon
)

// String returns the shape name accepted by ParseShape.
func (s Shape) String() string {
	switch s {
	case Prism:
		return "prism"
	case Dodecahedron:
		return "dodecahedron"
	case Hexagon:
		return "hexagon"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape maps "prism" or "dodecahedron" (case-insensitive) to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "prism":
		return Prism, nil
	case "dodecahedron":
		return Dodecahedron, nil
	}
	return Prism, fmt.Errorf("%w: %w: %q", ErrConfiguration, ErrUnknownShape, name)
}

// Result is the outcome of Generate. The caller owns Labels.
type Result struct {
	// Labels holds 0 for background/masked cells and 1..Count elsewhere.
	Labels *volume.Labels
	// Count is K, the number of regions.
	Count int
	// Seeds is the number of seeds labeled: survivors of the mask for hexagon
	// and dodecahedron, the 2D base seeds for prisms.
	Seeds int
	// Shape is the shape actually produced.
	Shape Shape
	// Strategy is the nearest-seed algorithm that ran.
	Strategy nearest.Strategy
	// Degenerate is true when no region survived; Labels is then all 0.
	Degenerate bool
	// RelabelFallback is true when relabeling left the lookup-table path.
	RelabelFallback bool
	// Elapsed is the wall time of the call.
	Elapsed time.Duration
}
