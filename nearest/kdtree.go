// SPDX-License-Identifier: MIT

package nearest

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/hextile/lattice"
	"github.com/katalvlaran/hextile/volume"
)

// site is a seed (or query) position in weighted (z, y, x) space.
type site struct {
	p  [3]float64
	id int32
}

// Compare returns the signed distance of s from c along dimension d.
func (s *site) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return s.p[d] - c.(*site).p[d]
}

// Dims returns 3.
func (s *site) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between s and c.
func (s *site) Distance(c kdtree.Comparable) float64 {
	q := c.(*site)
	var sum float64
	for i, v := range s.p {
		d := v - q.p[i]
		sum += d * d
	}
	return sum
}

// sites satisfies kdtree.Interface.
type sites []*site

func (s sites) Index(i int) kdtree.Comparable         { return s[i] }
func (s sites) Len() int                              { return len(s) }
func (s sites) Slice(start, end int) kdtree.Interface { return s[start:end] }

// Pivot sorts s along d, then by id, and returns the middle index, so the
// same seeds always build the same tree. kdtree.Select pivots randomly.
func (s sites) Pivot(d kdtree.Dim) int {
	sort.Sort(sitePlane{sites: s, dim: d})
	return len(s) / 2
}

// sitePlane orders sites along one dimension, then by id. Positions and
// ids are unique, so the order is total.
type sitePlane struct {
	sites
	dim kdtree.Dim
}

func (p sitePlane) Less(i, j int) bool {
	a, b := p.sites[i], p.sites[j]
	if a.p[p.dim] != b.p[p.dim] {
		return a.p[p.dim] < b.p[p.dim]
	}
	return a.id < b.id
}

func (p sitePlane) Swap(i, j int) { p.sites[i], p.sites[j] = p.sites[j], p.sites[i] }

// labelKDTree answers one nearest-seed query per cell, one grid row per task.
func labelKDTree(d volume.Dims, seeds []lattice.Seed, o Options) *volume.Labels {
	w := o.Sampling
	pts := make(sites, len(seeds))
	for i, s := range seeds {
		pts[i] = &site{
			p:  [3]float64{w[0] * float64(s.Pos.Z), w[1] * float64(s.Pos.Y), w[2] * float64(s.Pos.X)},
			id: s.ID,
		}
	}
	tree := kdtree.New(pts, false)

	out := volume.NewLabels(d)
	rows := d.Depth * d.Height
	parallelFor(rows, o.workers(), func(lo, hi int) {
		q := &site{}
		for row := lo; row < hi; row++ {
			q.p[0] = w[0] * float64(row/d.Height)
			q.p[1] = w[1] * float64(row%d.Height)
			base := row * d.Width
			for x := 0; x < d.Width; x++ {
				q.p[2] = w[2] * float64(x)
				best, _ := tree.Nearest(q)
				out.Data[base+x] = best.(*site).id
			}
		}
	})
	return out
}
