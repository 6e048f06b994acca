// SPDX-License-Identifier: MIT

package volume

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxCells bounds the grid volume unless a caller raises it:
	// 1 GiB of int32 labels plus 2 GiB of float64 distance scratch.
	DefaultMaxCells = 1 << 28

	// HardMaxCells is the absolute ceiling; cell indices and label ids must
	// stay within int32.
	HardMaxCells = math.MaxInt32

	// BytesPerCell is the peak working memory per cell during labeling
	// (int32 label + float64 squared distance).
	BytesPerCell = 4 + 8
)

// Dims is an immutable grid shape in cells. 2D grids use Depth == 1.
type Dims struct {
	Depth, Height, Width int
}

// Point is an integer cell coordinate.
type Point struct {
	Z, Y, X int
}

// String formats p as (z,y,x).
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Z, p.Y, p.X)
}

// Labels is a dense int32 label volume congruent to Dims.
// 0 is background; other values are region ids.
type Labels struct {
	Dims Dims
	Data []int32
}

// Mask is a dense boolean exclusion volume congruent to Dims.
// true marks a forbidden cell.
type Mask struct {
	Dims Dims
	Data []bool
}
