// SPDX-License-Identifier: MIT

package volume

import "fmt"

// NewMask allocates an all-false mask. d must be valid.
func NewMask(d Dims) *Mask {
	return &Mask{Dims: d, Data: make([]bool, d.Cells())}
}

// MaskFrom wraps data as a mask after checking its length. data is not copied.
func MaskFrom(d Dims, data []bool) (*Mask, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(data) != d.Cells() {
		return nil, fmt.Errorf("%w: mask has %d cells, grid %s has %d",
			ErrShapeMismatch, len(data), d, d.Cells())
	}
	return &Mask{Dims: d, Data: data}, nil
}

// Check reports ErrShapeMismatch unless m is congruent to d.
// A nil mask is always congruent.
func (m *Mask) Check(d Dims) error {
	if m == nil {
		return nil
	}
	if m.Dims != d {
		return fmt.Errorf("%w: mask is %s, grid is %s", ErrShapeMismatch, m.Dims, d)
	}
	if len(m.Data) != d.Cells() {
		return fmt.Errorf("%w: mask has %d cells, grid %s has %d",
			ErrShapeMismatch, len(m.Data), d, d.Cells())
	}
	return nil
}

// Masked reports whether p is excluded. A nil mask excludes nothing.
func (m *Mask) Masked(p Point) bool {
	if m == nil || !m.Dims.Contains(p) {
		return false
	}
	return m.Data[m.Dims.Index(p)]
}

// Set marks or clears p. Points outside the grid are ignored.
func (m *Mask) Set(p Point, masked bool) {
	if !m.Dims.Contains(p) {
		return
	}
	m.Data[m.Dims.Index(p)] = masked
}

// Count returns the number of masked cells.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, v := range m.Data {
		if v {
			n++
		}
	}
	return n
}
