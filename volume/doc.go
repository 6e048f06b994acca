// SPDX-License-Identifier: MIT

// Package volume defines the dense grid containers shared by every hextile
// package: Dims (the grid), Point, Labels (int32 label volume) and Mask
// (boolean exclusion volume).
//
// Layout:
//
//   - Cells are stored row-major in z, y, x order:
//     index = (z·Height + y)·Width + x.
//   - A 2D grid is a volume with Depth == 1.
//
// Size guard:
//
//   - CheckSize rejects grids whose cell count exceeds a configurable
//     maximum (DefaultMaxCells, never more than HardMaxCells) before any
//     allocation, reporting the estimated memory in human units.
//
// Errors:
//
//   - ErrInvalidDims: a dimension is < 1.
//   - ErrShapeMismatch: a Mask or Labels volume is not congruent to Dims.
//   - ErrTooLarge: the grid exceeds the maximum cell count.
//   - ErrOutOfRange: a Point lies outside the grid.
package volume
