// SPDX-License-Identifier: MIT

// Package nearest labels every cell of a grid with the id of its nearest
// seed.
//
// What:
//
//   - Propagation: an exact Euclidean feature transform. One pass per axis
//     computes the lower envelope of parabolas along every grid line and
//     carries the owning seed's id with each squared distance. Time O(N),
//     scratch O(N) float64 (N = cells).
//   - KDTree: a gonum kd-tree over the seeds answers one nearest query per
//     cell. Time O(N log S), no distance scratch (S = seeds).
//   - Auto (default): KDTree when seeds are very sparse (at least
//     SparseCellsPerSeed cells per seed), Propagation otherwise.
//
// Metric:
//
//	d² = (wz·Δz)² + (wy·Δy)² + (wx·Δx)², with (wz, wy, wx) set by WithSampling.
//
// Concurrency:
//
//   - Lines (Propagation) or rows (KDTree) are spread over WithWorkers
//     goroutines. Each cell is written by exactly one goroutine and its value
//     depends only on the seeds, so the output is identical for every worker
//     count.
//
// Ties:
//
//   - A cell equidistant from several seeds gets one of them, chosen by the
//     traversal order of the selected strategy. The choice is deterministic
//     for a fixed seed set, grid and strategy but has no geometric meaning,
//     and the two strategies may break the same tie differently.
//
// Errors:
//
//   - ErrInvalidSampling: a sampling weight ≤ 0, NaN or ±Inf.
//   - ErrInvalidWorkers: a negative worker count.
//   - ErrInvalidStrategy: an unknown Strategy value or name.
//   - ErrSeedOutOfBounds: a seed outside the grid.
//   - ErrInvalidSeedID: a seed id ≤ 0 or used twice.
//   - ErrDuplicateSeed: two seeds on the same cell.
package nearest
