// SPDX-License-Identifier: MIT

package volume

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Validate reports ErrInvalidDims naming the first dimension below 1.
func (d Dims) Validate() error {
	switch {
	case d.Depth < 1:
		return fmt.Errorf("%w: depth=%d", ErrInvalidDims, d.Depth)
	case d.Height < 1:
		return fmt.Errorf("%w: height=%d", ErrInvalidDims, d.Height)
	case d.Width < 1:
		return fmt.Errorf("%w: width=%d", ErrInvalidDims, d.Width)
	}
	return nil
}

// CheckSize validates d and rejects grids with more than maxCells cells.
// maxCells <= 0 selects DefaultMaxCells; values above HardMaxCells are
// clamped to HardMaxCells. The product is computed without overflow.
func (d Dims) CheckSize(maxCells int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	if maxCells > HardMaxCells {
		maxCells = HardMaxCells
	}
	limit := uint64(maxCells)
	cells := uint64(d.Depth)
	for _, n := range []int{d.Height, d.Width} {
		if cells > limit/uint64(n) {
			return d.tooLarge(limit)
		}
		cells *= uint64(n)
	}
	if cells > limit {
		return d.tooLarge(limit)
	}
	return nil
}

func (d Dims) tooLarge(limit uint64) error {
	cells := float64(d.Depth) * float64(d.Height) * float64(d.Width)
	need, unit := humanize.ComputeSI(cells)
	est := uint64(math.MaxUint64)
	if b := cells * BytesPerCell; b < float64(math.MaxUint64) {
		est = uint64(b)
	}
	return fmt.Errorf("%w: %s needs %.1f%s cells (~%s working memory), limit is %s cells (%s)",
		ErrTooLarge, d, need, unit,
		humanize.IBytes(est),
		humanize.Comma(int64(limit)),
		humanize.IBytes(limit*BytesPerCell))
}

// Cells returns Depth·Height·Width. Call CheckSize first for untrusted dims.
func (d Dims) Cells() int {
	return d.Depth * d.Height * d.Width
}

// PlaneCells returns Height·Width.
func (d Dims) PlaneCells() int {
	return d.Height * d.Width
}

// Is2D reports whether the grid has a single depth layer.
func (d Dims) Is2D() bool {
	return d.Depth == 1
}

// Plane returns the 2D shape of one depth layer.
func (d Dims) Plane() Dims {
	return Dims{Depth: 1, Height: d.Height, Width: d.Width}
}

// Contains reports whether p lies within the grid.
func (d Dims) Contains(p Point) bool {
	return p.Z >= 0 && p.Z < d.Depth &&
		p.Y >= 0 && p.Y < d.Height &&
		p.X >= 0 && p.X < d.Width
}

// Index maps p to its row-major cell index. p must lie within the grid.
func (d Dims) Index(p Point) int {
	return (p.Z*d.Height+p.Y)*d.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (d Dims) Coordinate(idx int) Point {
	x := idx % d.Width
	idx /= d.Width
	return Point{Z: idx / d.Height, Y: idx % d.Height, X: x}
}

// String formats d as DxHxW.
func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Depth, d.Height, d.Width)
}
