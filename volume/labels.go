// SPDX-License-Identifier: MIT

package volume

import "fmt"

// NewLabels allocates an all-background label volume. d must be valid.
func NewLabels(d Dims) *Labels {
	return &Labels{Dims: d, Data: make([]int32, d.Cells())}
}

// LabelsFrom wraps data as a label volume after checking its length.
// data is not copied.
func LabelsFrom(d Dims, data []int32) (*Labels, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(data) != d.Cells() {
		return nil, fmt.Errorf("%w: labels have %d cells, grid %s has %d",
			ErrShapeMismatch, len(data), d, d.Cells())
	}
	return &Labels{Dims: d, Data: data}, nil
}

// At returns the label at p, or ErrOutOfRange.
func (l *Labels) At(p Point) (int32, error) {
	if !l.Dims.Contains(p) {
		return 0, fmt.Errorf("%w: %s in %s", ErrOutOfRange, p, l.Dims)
	}
	return l.Data[l.Dims.Index(p)], nil
}

// Set writes v at p, or returns ErrOutOfRange.
func (l *Labels) Set(p Point, v int32) error {
	if !l.Dims.Contains(p) {
		return fmt.Errorf("%w: %s in %s", ErrOutOfRange, p, l.Dims)
	}
	l.Data[l.Dims.Index(p)] = v
	return nil
}

// Max returns the largest label, or 0 for an all-background volume.
func (l *Labels) Max() int32 {
	var m int32
	for _, v := range l.Data {
		if v > m {
			m = v
		}
	}
	return m
}

// Layer returns the labels of depth layer z as a shared sub-slice.
func (l *Labels) Layer(z int) []int32 {
	n := l.Dims.PlaneCells()
	return l.Data[z*n : (z+1)*n]
}

// ApplyMask forces every masked cell to 0. A nil mask is a no-op.
func (l *Labels) ApplyMask(m *Mask) error {
	if m == nil {
		return nil
	}
	if err := m.Check(l.Dims); err != nil {
		return err
	}
	for i, masked := range m.Data {
		if masked {
			l.Data[i] = 0
		}
	}
	return nil
}

// Clone returns a deep copy of l.
func (l *Labels) Clone() *Labels {
	data := make([]int32, len(l.Data))
	copy(data, l.Data)
	return &Labels{Dims: l.Dims, Data: data}
}
