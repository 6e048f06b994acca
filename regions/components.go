// SPDX-License-Identifier: MIT

package regions

import (
	"sort"

	"github.com/katalvlaran/hextile/volume"
)

// Components counts the connected components of every non-zero label under
// conn. A well-formed tessellation has exactly one per label.
//
// Time:   O(N·d), d = 6 or 26.
// Memory: O(N) for visited flags and the BFS queue.
func Components(l *volume.Labels, conn Connectivity) (map[int32]int, error) {
	if err := check(l); err != nil {
		return nil, err
	}
	d := l.Dims
	offs := offsets(conn, false)
	seen := make([]bool, len(l.Data))
	counts := make(map[int32]int)
	var queue []int

	for i0, id := range l.Data {
		if id == 0 || seen[i0] {
			continue
		}
		// BFS over cells carrying the same id
		queue = append(queue[:0], i0)
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			p := d.Coordinate(queue[qi])
			for _, o := range offs {
				q := volume.Point{Z: p.Z + o[0], Y: p.Y + o[1], X: p.X + o[2]}
				if !d.Contains(q) {
					continue
				}
				j := d.Index(q)
				if !seen[j] && l.Data[j] == id {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
		counts[id]++
	}
	return counts, nil
}

// Fragmented returns, sorted, the labels with more than one component.
func Fragmented(l *volume.Labels, conn Connectivity) ([]int32, error) {
	counts, err := Components(l, conn)
	if err != nil {
		return nil, err
	}
	var out []int32
	for id, n := range counts {
		if n > 1 {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Adjacency returns the unique pairs {a, b}, a < b, of non-zero labels with
// at least one pair of touching cells, sorted by a then b.
func Adjacency(l *volume.Labels, conn Connectivity) ([][2]int32, error) {
	if err := check(l); err != nil {
		return nil, err
	}
	d := l.Dims
	offs := offsets(conn, true)
	set := make(map[[2]int32]struct{})
	for i, a := range l.Data {
		if a == 0 {
			continue
		}
		p := d.Coordinate(i)
		for _, o := range offs {
			q := volume.Point{Z: p.Z + o[0], Y: p.Y + o[1], X: p.X + o[2]}
			if !d.Contains(q) {
				continue
			}
			b := l.Data[d.Index(q)]
			if b == 0 || b == a {
				continue
			}
			if a < b {
				set[[2]int32{a, b}] = struct{}{}
			} else {
				set[[2]int32{b, a}] = struct{}{}
			}
		}
	}
	out := make([][2]int32, 0, len(set))
	for pair := range set {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out, nil
}
