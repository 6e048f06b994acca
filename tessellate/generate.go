// SPDX-License-Identifier: MIT

package tessellate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/hextile/lattice"
	"github.com/katalvlaran/hextile/nearest"
	"github.com/katalvlaran/hextile/prism"
	"github.com/katalvlaran/hextile/relabel"
	"github.com/katalvlaran/hextile/volume"
)

// Generate partitions a grid of shape dims into regions of the given side
// length (in physical units; side/scale is the side in voxels).
//
// Implementation:
//   - Stage 1: validate every input; failures wrap ErrConfiguration.
//   - Stage 2: guard the grid volume (volume.ErrTooLarge).
//   - Stage 3: dispatch to the hexagon, dodecahedron or prism path.
//   - Stage 4: relabel consecutively to 1..K.
//
// Very small sides are rejected rather than planned: a lattice may visit at
// most lattice.MaxSitesPerCell sites per grid cell (plus a small constant).
// That puts the floor near 0.16 voxels for hexagons and prisms and near
// 0.45 voxels (cube root of sideXY²·sideZ) for dodecahedra. Such inputs
// return ErrConfiguration with lattice.ErrTooManyCandidates.
//
// Complexity: O(N) time with propagation, O(N log S) with the kd-tree;
// about volume.BytesPerCell bytes per cell of peak scratch.
func Generate(side float64, dims volume.Dims, opts ...Option) (*Result, error) {
	start := time.Now()
	o := gatherOptions(opts)
	if err := validate(side, dims, &o); err != nil {
		return nil, err
	}
	if err := dims.CheckSize(o.MaxCells); err != nil {
		return nil, err
	}

	sideXY := side / o.PlanarScale
	sideZ := side / o.DepthScale
	o.Logger.Debugf("tessellate: %s grid (%s cells), side %g, planar %g voxels, depth %g voxels",
		dims, humanize.Comma(int64(dims.Cells())), side, sideXY, sideZ)

	res := &Result{}
	var err error
	switch {
	case dims.Is2D():
		res.Shape = Hexagon
		err = hexagons(res, dims, sideXY, &o)
	case o.Shape == Dodecahedron:
		res.Shape = Dodecahedron
		err = dodecahedra(res, dims, sideXY, sideZ, &o)
	default:
		res.Shape = Prism
		err = prisms(res, dims, sideXY, sideZ, &o)
	}
	if err != nil {
		return nil, err
	}

	st, err := relabel.Consecutive(res.Labels.Data,
		relabel.WithMaxTableEntries(o.MaxTableEntries),
		relabel.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}
	res.Count = st.Count
	res.RelabelFallback = st.Fallback
	res.Degenerate = st.Count == 0
	res.Elapsed = time.Since(start)

	if res.Degenerate {
		o.Logger.Warningf("tessellate: no region survived the mask in %s grid", dims)
	}
	o.Logger.Infof("tessellate: %s grid → %s %s regions from %s seeds (%s) in %s",
		dims, humanize.Comma(int64(res.Count)), res.Shape,
		humanize.Comma(int64(res.Seeds)), res.Strategy, res.Elapsed)
	return res, nil
}

// validate checks every input before any planning.
func validate(side float64, dims volume.Dims, o *Options) error {
	if !(side > 0) || math.IsInf(side, 0) {
		return fmt.Errorf("%w: %w: side_length=%g", ErrConfiguration, lattice.ErrInvalidSide, side)
	}
	if !(o.PlanarScale > 0) || math.IsInf(o.PlanarScale, 0) {
		return fmt.Errorf("%w: %w: planar_scale=%g", ErrConfiguration, ErrInvalidScale, o.PlanarScale)
	}
	if !(o.DepthScale > 0) || math.IsInf(o.DepthScale, 0) {
		return fmt.Errorf("%w: %w: depth_scale=%g", ErrConfiguration, ErrInvalidScale, o.DepthScale)
	}
	if r := o.DepthScale / o.PlanarScale; r == 0 || math.IsInf(r, 0) {
		return fmt.Errorf("%w: %w: depth_scale/planar_scale=%g", ErrConfiguration, ErrInvalidScale, r)
	}
	if err := dims.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if o.Shape != Prism && o.Shape != Dodecahedron {
		return fmt.Errorf("%w: %w: %s", ErrConfiguration, ErrUnknownShape, o.Shape)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: %w: workers=%d", ErrConfiguration, nearest.ErrInvalidWorkers, o.Workers)
	}
	if !o.Strategy.Valid() {
		return fmt.Errorf("%w: %w: %s", ErrConfiguration, nearest.ErrInvalidStrategy, o.Strategy)
	}
	if err := o.Mask.Check(dims); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

// plan wraps lattice errors as configuration errors; both are caused by the
// side length relative to the grid.
func plan(candidates []volume.Point, err error) ([]volume.Point, error) {
	if err != nil {
		if errors.Is(err, lattice.ErrInvalidSide) || errors.Is(err, lattice.ErrTooManyCandidates) {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return nil, err
	}
	return candidates, nil
}

// label runs the nearest-seed step and records its stats in res.
func label(res *Result, d volume.Dims, seeds []lattice.Seed, sampling [3]float64, o *Options) (*volume.Labels, error) {
	out, st, err := nearest.Label(d, seeds, o.nearestOptions(sampling)...)
	if err != nil {
		return nil, err
	}
	res.Seeds = st.Seeds
	res.Strategy = st.Strategy
	return out, nil
}

// hexagons: mask-aware seeds, planar labeling, masked cells cleared.
func hexagons(res *Result, d volume.Dims, sideXY float64, o *Options) error {
	candidates, err := plan(lattice.Hex(d, sideXY))
	if err != nil {
		return err
	}
	seeds, err := lattice.Assign(d, candidates, o.Mask)
	if err != nil {
		return err
	}
	o.Logger.Debugf("tessellate: %d hex candidates, %d seeds after mask", len(candidates), len(seeds))
	if res.Labels, err = label(res, d, seeds, [3]float64{1, 1, 1}, o); err != nil {
		return err
	}
	return res.Labels.ApplyMask(o.Mask)
}

// dodecahedra: mask-aware FCC seeds, depth-weighted labeling, masked cells
// cleared. Depth voxels are DepthScale/PlanarScale times as long as planar
// ones, so the lattice is isotropic in physical space.
func dodecahedra(res *Result, d volume.Dims, sideXY, sideZ float64, o *Options) error {
	candidates, err := plan(lattice.FCC(d, sideXY, sideZ))
	if err != nil {
		return err
	}
	seeds, err := lattice.Assign(d, candidates, o.Mask)
	if err != nil {
		return err
	}
	o.Logger.Debugf("tessellate: %d FCC candidates, %d seeds after mask", len(candidates), len(seeds))
	sampling := [3]float64{o.DepthScale / o.PlanarScale, 1, 1}
	if res.Labels, err = label(res, d, seeds, sampling, o); err != nil {
		return err
	}
	return res.Labels.ApplyMask(o.Mask)
}

// prisms: one unmasked planar labeling stamped across depth layers, then
// masked. Masked prisms are carved, not re-seeded.
func prisms(res *Result, d volume.Dims, sideXY, sideZ float64, o *Options) error {
	plane := d.Plane()
	candidates, err := plan(lattice.Hex(plane, sideXY))
	if err != nil {
		return err
	}
	seeds, err := lattice.Assign(plane, candidates, nil)
	if err != nil {
		return err
	}
	base, err := label(res, plane, seeds, [3]float64{1, 1, 1}, o)
	if err != nil {
		return err
	}

	thickness := prism.Thickness(sideZ)
	o.Logger.Debugf("tessellate: %d base hexagons extruded in layers of %d voxels", len(seeds), thickness)
	if res.Labels, err = prism.Extrude(base, d, thickness); err != nil {
		return err
	}
	return res.Labels.ApplyMask(o.Mask)
}
