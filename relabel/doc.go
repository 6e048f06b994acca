// SPDX-License-Identifier: MIT

// Package relabel compacts label ids into the dense range 1..K.
//
// Consecutive rewrites a label slice in place so that its K distinct
// non-zero ids become 1..K, keeping 0 as background, keeping cells that
// shared an id together, and keeping the relative order of ids. A volume
// that is already consecutive is left untouched.
//
// Strategy:
//
//   - Lookup table: when the largest id is below MaxTableEntries, one dense
//     table maps old ids to new ones. O(N + max) time.
//   - Sorted ids: otherwise the distinct ids are collected, sorted and found
//     by binary search. O(N log K) time. The fallback is logged as a warning
//     and reported in Stats.Fallback; the output is identical.
//
// Errors:
//
//   - ErrNegativeLabel: a label below 0.
package relabel
