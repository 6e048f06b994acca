// SPDX-License-Identifier: MIT

package tessellate_test

import (
	"bytes"
	"errors"
	"log"
	"math"
	"testing"

	"github.com/katalvlaran/hextile/lattice"
	"github.com/katalvlaran/hextile/logging"
	"github.com/katalvlaran/hextile/nearest"
	"github.com/katalvlaran/hextile/regions"
	"github.com/katalvlaran/hextile/tessellate"
	"github.com/katalvlaran/hextile/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maskRows masks every cell whose row is below rows.
func maskRows(d volume.Dims, rows int) *volume.Mask {
	m := volume.NewMask(d)
	for i := range m.Data {
		if d.Coordinate(i).Y < rows {
			m.Data[i] = true
		}
	}
	return m
}

// assertConsecutive checks that the non-zero labels are exactly 1..count.
func assertConsecutive(t *testing.T, l *volume.Labels, count int) {
	t.Helper()
	seen := make([]bool, count+1)
	for i, v := range l.Data {
		require.True(t, v >= 0 && int(v) <= count, "label %d at %s outside 0..%d", v, l.Dims.Coordinate(i), count)
		seen[v] = true
	}
	for id := 1; id <= count; id++ {
		assert.True(t, seen[id], "label %d missing", id)
	}
}

// assertMasked checks that masked cells are 0 and all others are labeled.
func assertMasked(t *testing.T, l *volume.Labels, m *volume.Mask) {
	t.Helper()
	for i, v := range l.Data {
		p := l.Dims.Coordinate(i)
		if m.Masked(p) {
			require.Zero(t, v, "masked cell %s labeled %d", p, v)
		} else {
			require.NotZero(t, v, "unmasked cell %s is background", p)
		}
	}
}

//----------------------------------------------------------------------------//
// 2D hexagons
//----------------------------------------------------------------------------//

func TestGenerate_Hexagons10x10(t *testing.T) {
	d := volume.Dims{Depth: 1, Height: 10, Width: 10}
	res, err := tessellate.Generate(3, d)
	require.NoError(t, err)

	assert.Equal(t, tessellate.Hexagon, res.Shape)
	assert.Equal(t, 6, res.Count)
	assert.Equal(t, 6, res.Seeds)
	assert.False(t, res.Degenerate)
	assert.Equal(t, nearest.Propagation, res.Strategy)
	assert.NotContains(t, res.Labels.Data, int32(0))
	assertConsecutive(t, res.Labels, res.Count)

	summary, err := regions.Summarize(res.Labels)
	require.NoError(t, err)
	require.Len(t, summary, 6)
	total := 0
	for _, r := range summary {
		total += r.Cells
	}
	assert.Equal(t, d.Cells(), total)

	split, err := regions.Fragmented(res.Labels, regions.Conn26)
	require.NoError(t, err)
	assert.Empty(t, split, "every hexagon is one connected piece")
}

// TestGenerate_HexagonsMaskedRows masks rows 0..4: only the three seeds in
// rows 5..9 survive and fill the unmasked half.
func TestGenerate_HexagonsMaskedRows(t *testing.T) {
	d := volume.Dims{Depth: 1, Height: 10, Width: 10}
	m := maskRows(d, 5)
	res, err := tessellate.Generate(3, d, tessellate.WithMask(m))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 3, res.Seeds)
	assertMasked(t, res.Labels, m)
	assertConsecutive(t, res.Labels, 3)

	// Seeds (5,0), (8,5), (5,9) keep ids 1, 2, 3.
	for id, p := range []volume.Point{{Y: 5, X: 0}, {Y: 8, X: 5}, {Y: 5, X: 9}} {
		v, err := res.Labels.At(p)
		require.NoError(t, err)
		assert.Equal(t, int32(id+1), v, "seed cell %s", p)
	}
}

func TestGenerate_2DIgnoresShape(t *testing.T) {
	d := volume.Dims{Depth: 1, Height: 10, Width: 10}
	hex, err := tessellate.Generate(3, d)
	require.NoError(t, err)
	dod, err := tessellate.Generate(3, d, tessellate.WithShape(tessellate.Dodecahedron))
	require.NoError(t, err)

	assert.Equal(t, tessellate.Hexagon, dod.Shape)
	assert.Equal(t, hex.Labels.Data, dod.Labels.Data)
}

func TestGenerate_PlanarScale(t *testing.T) {
	d := volume.Dims{Depth: 1, Height: 10, Width: 10}
	// side 6 at 2 units per voxel is the 3-voxel lattice.
	scaled, err := tessellate.Generate(6, d, tessellate.WithPlanarScale(2))
	require.NoError(t, err)
	plain, err := tessellate.Generate(3, d)
	require.NoError(t, err)
	assert.Equal(t, plain.Labels.Data, scaled.Labels.Data)
}

//----------------------------------------------------------------------------//
// 3D prisms
//----------------------------------------------------------------------------//

// TestGenerate_PrismLayers checks that planar boundaries repeat on every
// layer and that each layer shifts ids by the base count.
func TestGenerate_PrismLayers(t *testing.T) {
	d := volume.Dims{Depth: 6, Height: 12, Width: 12}
	res, err := tessellate.Generate(3, d)
	require.NoError(t, err)

	assert.Equal(t, tessellate.Prism, res.Shape)
	require.Equal(t, 0, res.Count%2, "two layers of three voxels")
	perLayer := int32(res.Count / 2)
	assert.Equal(t, res.Seeds, int(perLayer))
	assertConsecutive(t, res.Labels, res.Count)

	base := res.Labels.Layer(0)
	for z := 1; z < d.Depth; z++ {
		shift := int32(0)
		if z >= 3 {
			shift = perLayer
		}
		layer := res.Labels.Layer(z)
		for i := range base {
			require.Equal(t, base[i]+shift, layer[i], "z=%d cell %d", z, i)
		}
	}
}

func TestGenerate_PrismDepthScale(t *testing.T) {
	d := volume.Dims{Depth: 5, Height: 8, Width: 8}
	// depth side 3/3 = 1 voxel: one prism layer per slice.
	res, err := tessellate.Generate(3, d, tessellate.WithDepthScale(3))
	require.NoError(t, err)
	assert.Equal(t, res.Seeds*d.Depth, res.Count)
}

// TestGenerate_PrismMask carves masked cells after extrusion and relabels.
func TestGenerate_PrismMask(t *testing.T) {
	d := volume.Dims{Depth: 4, Height: 12, Width: 12}
	m := volume.NewMask(d)
	for i := range m.Data {
		p := d.Coordinate(i)
		if p.X < 6 || p.Z == 0 {
			m.Data[i] = true
		}
	}
	res, err := tessellate.Generate(3, d, tessellate.WithMask(m))
	require.NoError(t, err)

	assertMasked(t, res.Labels, m)
	assertConsecutive(t, res.Labels, res.Count)

	full, err := tessellate.Generate(3, d)
	require.NoError(t, err)
	assert.Less(t, res.Count, full.Count)
}

//----------------------------------------------------------------------------//
// 3D dodecahedra
//----------------------------------------------------------------------------//

// TestGenerate_DodecahedraNearest compares the anisotropic labeling with a
// brute-force search over the same mask-filtered FCC seeds.
func TestGenerate_DodecahedraNearest(t *testing.T) {
	d := volume.Dims{Depth: 6, Height: 9, Width: 9}
	m := volume.NewMask(d)
	for i := range m.Data {
		if p := d.Coordinate(i); p.Z < 2 && p.X < 4 {
			m.Data[i] = true
		}
	}

	for _, strategy := range []nearest.Strategy{nearest.Propagation, nearest.KDTree} {
		t.Run(strategy.String(), func(t *testing.T) {
			res, err := tessellate.Generate(2, d,
				tessellate.WithShape(tessellate.Dodecahedron),
				tessellate.WithDepthScale(2),
				tessellate.WithMask(m),
				tessellate.WithStrategy(strategy))
			require.NoError(t, err)
			assert.Equal(t, tessellate.Dodecahedron, res.Shape)
			assert.Equal(t, strategy, res.Strategy)
			assertMasked(t, res.Labels, m)

			candidates, err := lattice.FCC(d, 2, 1)
			require.NoError(t, err)
			seeds, err := lattice.Assign(d, candidates, m)
			require.NoError(t, err)
			require.Equal(t, len(seeds), res.Count, "every surviving seed owns a region")

			pos := make(map[int32]volume.Point, len(seeds))
			for _, s := range seeds {
				pos[s.ID] = s.Pos
			}
			w := [3]float64{2, 1, 1}
			for i, id := range res.Labels.Data {
				p := d.Coordinate(i)
				if m.Masked(p) {
					continue
				}
				best := math.Inf(1)
				for _, s := range seeds {
					best = math.Min(best, sqDist(w, p, s.Pos))
				}
				require.InDelta(t, best, sqDist(w, p, pos[id]), 1e-9, "cell %s", p)
			}
		})
	}
}

func sqDist(w [3]float64, a, b volume.Point) float64 {
	dz := w[0] * float64(a.Z-b.Z)
	dy := w[1] * float64(a.Y-b.Y)
	dx := w[2] * float64(a.X-b.X)
	return dz*dz + dy*dy + dx*dx
}

//----------------------------------------------------------------------------//
// Cross-cutting behavior
//----------------------------------------------------------------------------//

func TestGenerate_Deterministic(t *testing.T) {
	d := volume.Dims{Depth: 7, Height: 15, Width: 13}
	for _, shape := range []tessellate.Shape{tessellate.Prism, tessellate.Dodecahedron} {
		for _, strategy := range []nearest.Strategy{nearest.Propagation, nearest.KDTree} {
			first, err := tessellate.Generate(2.5, d, tessellate.WithShape(shape),
				tessellate.WithStrategy(strategy), tessellate.WithWorkers(1))
			require.NoError(t, err)
			require.Equal(t, strategy, first.Strategy)
			for _, workers := range []int{1, 1, 3, 8} {
				again, err := tessellate.Generate(2.5, d, tessellate.WithShape(shape),
					tessellate.WithStrategy(strategy), tessellate.WithWorkers(workers))
				require.NoError(t, err)
				assert.Equal(t, first.Labels.Data, again.Labels.Data, "%s/%s with %d workers", shape, strategy, workers)
			}
		}
	}
}

func TestGenerate_FullMaskIsDegenerate(t *testing.T) {
	for _, d := range []volume.Dims{
		{Depth: 1, Height: 8, Width: 8},
		{Depth: 3, Height: 8, Width: 8},
	} {
		for _, shape := range []tessellate.Shape{tessellate.Prism, tessellate.Dodecahedron} {
			m := volume.NewMask(d)
			for i := range m.Data {
				m.Data[i] = true
			}
			res, err := tessellate.Generate(2, d, tessellate.WithMask(m), tessellate.WithShape(shape))
			require.NoError(t, err, "%s %s", d, shape)
			assert.True(t, res.Degenerate)
			assert.Zero(t, res.Count)
			assert.Equal(t, make([]int32, d.Cells()), res.Labels.Data)
		}
	}
}

func TestGenerate_RelabelFallback(t *testing.T) {
	d := volume.Dims{Depth: 2, Height: 10, Width: 10}
	plain, err := tessellate.Generate(3, d)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := logging.New(log.New(&buf, "", 0), logging.DebugLevel)
	res, err := tessellate.Generate(3, d,
		tessellate.WithMaxTableEntries(2),
		tessellate.WithLogger(logger))
	require.NoError(t, err)

	assert.True(t, res.RelabelFallback)
	assert.False(t, plain.RelabelFallback)
	assert.Equal(t, plain.Labels.Data, res.Labels.Data)
	assert.Contains(t, buf.String(), "sorted ids")
	assert.Contains(t, buf.String(), "prism regions")
}

func TestGenerate_TooLarge(t *testing.T) {
	d := volume.Dims{Depth: 1, Height: 100, Width: 100}
	_, err := tessellate.Generate(3, d, tessellate.WithMaxCells(1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, volume.ErrTooLarge)
	assert.False(t, errors.Is(err, tessellate.ErrConfiguration))
}

func TestGenerate_ConfigurationErrors(t *testing.T) {
	d := volume.Dims{Depth: 2, Height: 10, Width: 10}
	cases := []struct {
		name string
		side float64
		dims volume.Dims
		opts []tessellate.Option
		want error
	}{
		{"zero side", 0, d, nil, lattice.ErrInvalidSide},
		{"negative side", -3, d, nil, lattice.ErrInvalidSide},
		{"NaN side", math.NaN(), d, nil, lattice.ErrInvalidSide},
		{"infinite side", math.Inf(1), d, nil, lattice.ErrInvalidSide},
		{"tiny side", 1e-6, d, nil, lattice.ErrTooManyCandidates},
		{"zero planar scale", 3, d, []tessellate.Option{tessellate.WithPlanarScale(0)}, tessellate.ErrInvalidScale},
		{"NaN depth scale", 3, d, []tessellate.Option{tessellate.WithDepthScale(math.NaN())}, tessellate.ErrInvalidScale},
		{"scale ratio overflow", 3, d, []tessellate.Option{tessellate.WithDepthScale(1e300), tessellate.WithPlanarScale(1e-300)}, tessellate.ErrInvalidScale},
		{"zero depth", 3, volume.Dims{Height: 10, Width: 10}, nil, volume.ErrInvalidDims},
		{"negative width", 3, volume.Dims{Depth: 1, Height: 10, Width: -1}, nil, volume.ErrInvalidDims},
		{"unknown shape", 3, d, []tessellate.Option{tessellate.WithShape(tessellate.Shape(9))}, tessellate.ErrUnknownShape},
		{"hexagon as 3D shape", 3, d, []tessellate.Option{tessellate.WithShape(tessellate.Hexagon)}, tessellate.ErrUnknownShape},
		{"negative workers", 3, d, []tessellate.Option{tessellate.WithWorkers(-1)}, nearest.ErrInvalidWorkers},
		{"unknown strategy", 3, d, []tessellate.Option{tessellate.WithStrategy(nearest.Strategy(42))}, nearest.ErrInvalidStrategy},
		{"mask mismatch", 3, d, []tessellate.Option{tessellate.WithMask(volume.NewMask(volume.Dims{Depth: 1, Height: 10, Width: 10}))}, volume.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tessellate.Generate(tc.side, tc.dims, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tessellate.ErrConfiguration)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestGenerate_SmallSides checks both sides of the lattice density floor
// on a 100×100 plane.
func TestGenerate_SmallSides(t *testing.T) {
	d := volume.Dims{Depth: 1, Height: 100, Width: 100}

	res, err := tessellate.Generate(0.3, d)
	require.NoError(t, err)
	assert.Equal(t, d.Cells(), res.Count, "every cell is its own seed")
	assertConsecutive(t, res.Labels, res.Count)

	_, err = tessellate.Generate(0.15, d)
	assert.ErrorIs(t, err, tessellate.ErrConfiguration)
	assert.ErrorIs(t, err, lattice.ErrTooManyCandidates)
}

func TestParseShape(t *testing.T) {
	for in, want := range map[string]tessellate.Shape{
		"":              tessellate.Prism,
		"prism":         tessellate.Prism,
		" Dodecahedron": tessellate.Dodecahedron,
	} {
		got, err := tessellate.ParseShape(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, want.String(), got.String())
	}

	_, err := tessellate.ParseShape("cube")
	assert.ErrorIs(t, err, tessellate.ErrUnknownShape)
	assert.ErrorIs(t, err, tessellate.ErrConfiguration)
	assert.Equal(t, "shape(9)", tessellate.Shape(9).String())
}
