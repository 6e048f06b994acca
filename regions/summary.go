// SPDX-License-Identifier: MIT

package regions

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hextile/volume"
)

// acc accumulates one region with exact integer sums.
type acc struct {
	cells    int
	sum      [3]int64
	min, max volume.Point
}

func (a *acc) add(p volume.Point) {
	if a.cells == 0 {
		a.min, a.max = p, p
	} else {
		a.min = volume.Point{Z: min(a.min.Z, p.Z), Y: min(a.min.Y, p.Y), X: min(a.min.X, p.X)}
		a.max = volume.Point{Z: max(a.max.Z, p.Z), Y: max(a.max.Y, p.Y), X: max(a.max.X, p.X)}
	}
	a.cells++
	a.sum[0] += int64(p.Z)
	a.sum[1] += int64(p.Y)
	a.sum[2] += int64(p.X)
}

func (a *acc) merge(b *acc) {
	if b.cells == 0 {
		return
	}
	if a.cells == 0 {
		*a = *b
		return
	}
	a.min = volume.Point{Z: min(a.min.Z, b.min.Z), Y: min(a.min.Y, b.min.Y), X: min(a.min.X, b.min.X)}
	a.max = volume.Point{Z: max(a.max.Z, b.max.Z), Y: max(a.max.Y, b.max.Y), X: max(a.max.X, b.max.X)}
	a.cells += b.cells
	for i := range a.sum {
		a.sum[i] += b.sum[i]
	}
}

// Summarize returns one Region per non-zero label, sorted by id.
// Depth layers are scanned by up to Options.Workers goroutines; sums are
// exact, so the result does not depend on the worker count or scheduling.
func Summarize(l *volume.Labels, opts ...Option) ([]Region, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := check(l); err != nil {
		return nil, err
	}
	d := l.Dims
	parts := make([]map[int32]*acc, d.Depth)

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for z := 0; z < d.Depth; z++ {
		z := z
		g.Go(func() error {
			m := make(map[int32]*acc)
			layer := l.Layer(z)
			for i, id := range layer {
				if id == 0 {
					continue
				}
				a := m[id]
				if a == nil {
					a = &acc{}
					m[id] = a
				}
				a.add(volume.Point{Z: z, Y: i / d.Width, X: i % d.Width})
			}
			parts[z] = m
			return nil
		})
	}
	_ = g.Wait()

	total := make(map[int32]*acc)
	for _, m := range parts {
		for id, a := range m {
			t := total[id]
			if t == nil {
				t = &acc{}
				total[id] = t
			}
			t.merge(a)
		}
	}

	out := make([]Region, 0, len(total))
	for id, a := range total {
		n := float64(a.cells)
		out = append(out, Region{
			ID:       id,
			Cells:    a.cells,
			Centroid: [3]float64{float64(a.sum[0]) / n, float64(a.sum[1]) / n, float64(a.sum[2]) / n},
			Min:      a.min,
			Max:      a.max,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
