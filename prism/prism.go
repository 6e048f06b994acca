// SPDX-License-Identifier: MIT

package prism

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hextile/volume"
)

var (
	// ErrBaseShape indicates a base that is not a single layer matching the
	// target plane.
	ErrBaseShape = errors.New("prism: base must be one layer with the target's height and width")
	// ErrInvalidThickness indicates a layer thickness below one voxel.
	ErrInvalidThickness = errors.New("prism: layer thickness must be >= 1")
	// ErrLabelOverflow indicates the stacked ids would not fit in int32.
	ErrLabelOverflow = errors.New("prism: stacked labels overflow int32")
)

// Thickness converts a depth side length in voxels to a whole number of
// layers, never less than one.
func Thickness(sideZ float64) int {
	if math.IsNaN(sideZ) || sideZ < 1 {
		return 1
	}
	if sideZ >= float64(math.MaxInt32) {
		return math.MaxInt32
	}
	return int(math.Round(sideZ))
}

// Extrude builds a label volume of shape d from the 2D labeling base.
// Depth z belongs to layer z/thickness; layer k holds base ids shifted by
// k·max(base). Background cells stay 0.
func Extrude(base *volume.Labels, d volume.Dims, thickness int) (*volume.Labels, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if base == nil || base.Dims != d.Plane() || len(base.Data) != d.PlaneCells() {
		var got volume.Dims
		if base != nil {
			got = base.Dims
		}
		return nil, fmt.Errorf("%w: base %s, target %s", ErrBaseShape, got, d)
	}
	if thickness < 1 {
		return nil, fmt.Errorf("%w: thickness=%d", ErrInvalidThickness, thickness)
	}

	step := base.Max()
	layers := (d.Depth + thickness - 1) / thickness
	if int64(step)*int64(layers) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d layers of %d ids", ErrLabelOverflow, layers, step)
	}

	out := volume.NewLabels(d)
	var offset int32
	for z := 0; z < d.Depth; z++ {
		if z > 0 && z%thickness == 0 {
			offset += step
		}
		dst := out.Layer(z)
		for i, v := range base.Data {
			if v != 0 {
				dst[i] = v + offset
			}
		}
	}
	return out, nil
}
