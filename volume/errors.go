// SPDX-License-Identifier: MIT

package volume

import "errors"

var (
	// ErrInvalidDims indicates a grid dimension below 1.
	ErrInvalidDims = errors.New("volume: dimensions must be >= 1")
	// ErrShapeMismatch indicates a volume whose shape differs from the grid.
	ErrShapeMismatch = errors.New("volume: shape mismatch")
	// ErrTooLarge indicates a grid above the configured maximum cell count.
	ErrTooLarge = errors.New("volume: grid too large")
	// ErrOutOfRange indicates a point outside the grid.
	ErrOutOfRange = errors.New("volume: point out of range")
)
