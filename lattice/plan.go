// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hextile/volume"
)

// fccOffsets are the corner and face-centre positions of one FCC unit cell,
// in units of half a cube edge, ordered (x, y, z).
var fccOffsets = [4][3]float64{
	{0, 0, 0},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
}

// Hex returns the hexagonal lattice candidates for the planar grid d with
// side length side. Only the first depth layer is planned (Z = 0).
func Hex(d volume.Dims, side float64) ([]volume.Point, error) {
	if err := checkSide("side", side); err != nil {
		return nil, err
	}
	plane := d.Plane()
	if err := plane.Validate(); err != nil {
		return nil, err
	}

	colStep := 1.5 * side
	rowStep := math.Sqrt(3) * side
	fCols, fRows := periods(plane.Width, colStep), periods(plane.Height, rowStep)
	if err := checkSites(plane, (fRows+2)*(fCols+2)); err != nil {
		return nil, err
	}
	nCols, nRows := int(fCols), int(fRows)

	pl := newPlanner(plane)
	for r := -1; r <= nRows; r++ {
		for c := -1; c <= nCols; c++ {
			y := float64(r) * rowStep
			if c&1 == 1 {
				y += rowStep / 2
			}
			pl.add(0, y, float64(c)*colStep)
		}
	}
	return pl.points, nil
}

// FCC returns the face-centered cubic candidates for grid d with planar side
// sideXY and depth side sideZ.
func FCC(d volume.Dims, sideXY, sideZ float64) ([]volume.Point, error) {
	if err := checkSide("planar side", sideXY); err != nil {
		return nil, err
	}
	if err := checkSide("depth side", sideZ); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	a := math.Sqrt2 * sideXY
	c := math.Sqrt2 * sideZ
	fx, fy, fz := periods(d.Width, a), periods(d.Height, a), periods(d.Depth, c)
	if err := checkSites(d, 4*(fx+2)*(fy+2)*(fz+2)); err != nil {
		return nil, err
	}
	nx, ny, nz := int(fx), int(fy), int(fz)

	half := [3]float64{a / 2, a / 2, c / 2}
	pl := newPlanner(d)
	for k := -1; k <= nz; k++ {
		for j := -1; j <= ny; j++ {
			for i := -1; i <= nx; i++ {
				for _, o := range fccOffsets {
					pl.add(
						float64(k)*c+o[2]*half[2],
						float64(j)*a+o[1]*half[1],
						float64(i)*a+o[0]*half[0],
					)
				}
			}
		}
	}
	return pl.points, nil
}

// planner rounds candidates onto the grid and keeps the first per cell.
type planner struct {
	dims   volume.Dims
	seen   []uint64
	points []volume.Point
}

func newPlanner(d volume.Dims) *planner {
	return &planner{dims: d, seen: make([]uint64, (d.Cells()+63)/64)}
}

func (pl *planner) add(z, y, x float64) {
	p := volume.Point{Z: int(math.Round(z)), Y: int(math.Round(y)), X: int(math.Round(x))}
	if !pl.dims.Contains(p) {
		return
	}
	i := pl.dims.Index(p)
	word, bit := i/64, uint64(1)<<(uint(i)%64)
	if pl.seen[word]&bit != 0 {
		return
	}
	pl.seen[word] |= bit
	pl.points = append(pl.points, p)
}

// periods returns how many lattice steps span n cells, plus one.
// It stays in float64 so absurd sides are caught by checkSites before any
// integer conversion.
func periods(n int, step float64) float64 {
	return math.Ceil(float64(n)/step) + 1
}

func checkSide(name string, side float64) error {
	if math.IsNaN(side) || math.IsInf(side, 0) || side <= 0 {
		return fmt.Errorf("%w: %s=%g", ErrInvalidSide, name, side)
	}
	return nil
}

func checkSites(d volume.Dims, sites float64) error {
	limit := float64(MaxSitesPerCell)*float64(d.Cells()) + 1024
	if sites > limit {
		return fmt.Errorf("%w: %.0f lattice sites for %d cells of %s",
			ErrTooManyCandidates, sites, d.Cells(), d)
	}
	return nil
}
