// SPDX-License-Identifier: MIT

package nearest

import (
	"math"

	"github.com/katalvlaran/hextile/lattice"
	"github.com/katalvlaran/hextile/volume"
)

// axis describes the grid lines along one dimension.
type axis struct {
	length int     // cells per line
	stride int     // index distance between neighbours on a line
	w2     float64 // squared sampling weight
}

// lineStart returns the index of the first cell of line number line.
func (a axis) lineStart(line int) int {
	return (line/a.stride)*(a.stride*a.length) + line%a.stride
}

// propagate runs the separable feature transform: x, then y, then z.
// After the pass along an axis every cell holds the squared distance to,
// and the id of, the nearest seed within the sub-grid spanned by the axes
// processed so far.
func propagate(d volume.Dims, seeds []lattice.Seed, o Options) *volume.Labels {
	out := volume.NewLabels(d)
	n := d.Cells()
	dist := make([]float64, n)
	inf := math.Inf(1)
	for i := range dist {
		dist[i] = inf
	}
	for _, s := range seeds {
		i := d.Index(s.Pos)
		dist[i] = 0
		out.Data[i] = s.ID
	}

	axes := [3]axis{
		{length: d.Width, stride: 1, w2: o.Sampling[2] * o.Sampling[2]},
		{length: d.Height, stride: d.Width, w2: o.Sampling[1] * o.Sampling[1]},
		{length: d.Depth, stride: d.PlaneCells(), w2: o.Sampling[0] * o.Sampling[0]},
	}
	workers := o.workers()
	for _, ax := range axes {
		if ax.length == 1 {
			continue
		}
		parallelFor(n/ax.length, workers, func(lo, hi int) {
			sc := newEnvelope(ax.length)
			for line := lo; line < hi; line++ {
				sc.transform(dist, out.Data, ax.lineStart(line), ax.stride, ax.w2)
			}
		})
	}
	return out
}

// envelope is the per-worker scratch of the 1D lower-envelope transform.
type envelope struct {
	f []float64 // input squared distances along the line
	l []int32   // input ids along the line
	v []int     // parabola apexes in the envelope
	z []float64 // boundaries between envelope parabolas
}

func newEnvelope(n int) *envelope {
	return &envelope{
		f: make([]float64, n),
		l: make([]int32, n),
		v: make([]int, n),
		z: make([]float64, n+1),
	}
}

// transform replaces the line starting at start with
// g(q) = min_p w2·(q−p)² + f(p), carrying the id of the minimizing p.
// Cells with f = +Inf contribute no parabola; a line without any finite
// sample is left untouched.
func (e *envelope) transform(dist []float64, lab []int32, start, stride int, w2 float64) {
	n := len(e.f)
	f, l, v, z := e.f, e.l, e.v, e.z
	for q, i := 0, start; q < n; q, i = q+1, i+stride {
		f[q] = dist[i]
		l[q] = lab[i]
	}

	k := -1
	for q := 0; q < n; q++ {
		if math.IsInf(f[q], 1) {
			continue
		}
		if k < 0 {
			k = 0
			v[0] = q
			z[0] = math.Inf(-1)
			z[1] = math.Inf(1)
			continue
		}
		hq := f[q] + w2*float64(q*q)
		var s float64
		for {
			p := v[k]
			s = (hq - (f[p] + w2*float64(p*p))) / (2 * w2 * float64(q-p))
			if s > z[k] {
				break
			}
			k--
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}
	if k < 0 {
		return
	}

	k = 0
	for q, i := 0, start; q < n; q, i = q+1, i+stride {
		for z[k+1] < float64(q) {
			k++
		}
		p := v[k]
		dq := float64(q - p)
		dist[i] = w2*dq*dq + f[p]
		lab[i] = l[p]
	}
}
