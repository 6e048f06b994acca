// SPDX-License-Identifier: MIT

// Package regions analyses a finished label volume: per-region statistics,
// connectivity and adjacency.
//
// What:
//
//   - Summarize: cell count, centroid and bounding box of every label.
//   - Components: number of connected components of every label.
//   - Fragmented: labels split into more than one component.
//   - Adjacency: unique pairs of labels that touch.
//
// Background (0) is never a region and never adjacent to anything.
//
// Complexity:
//
//   - Summarize:  O(N) time, O(K) memory, parallel over depth layers.
//   - Components: O(N·d) time, O(N) memory (d = 6 or 26 neighbours).
//   - Adjacency:  O(N·d/2) time, O(pairs) memory.
//
// Options:
//
//   - Conn6 (faces) or Conn26 (faces, edges, corners). On a single-layer
//     volume these reduce to 4- and 8-connectivity.
//   - WithWorkers(n) bounds Summarize's goroutines (0 = GOMAXPROCS).
//
// Errors:
//
//   - ErrNilLabels: nil volume or a Data slice not matching its Dims.
//   - ErrInvalidWorkers: negative WithWorkers value.
package regions
