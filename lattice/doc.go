// SPDX-License-Identifier: MIT

// Package lattice plans tessellation seeds on a voxel grid and assigns them
// dense ids.
//
// What:
//
//   - Hex: flat-top hexagonal lattice in the z=0 plane. Columns are 1.5·s
//     apart along x, rows √3·s apart along y, odd columns shifted by half a
//     row. Its Voronoi cells are regular hexagons of side s.
//   - FCC: face-centered cubic lattice with cube edge √2·s (planar) and √2·s_z
//     (depth). Each unit cell contributes its corner and three face centres;
//     the Voronoi cells are rhombic dodecahedra.
//   - Assign: drops candidates on masked cells, then numbers the survivors
//     1..S in planning order.
//
// Planning order is fixed: Hex walks rows then columns, FCC walks z, y, x
// unit cells and then the four sublattice offsets. Candidates are rounded to
// the nearest cell, out-of-bounds candidates are discarded and a cell is
// claimed by the first candidate that rounds onto it, so the seed list is
// duplicate-free and reproducible.
//
// Every lattice extends one period beyond each grid boundary so border cells
// belong to partial regions instead of being stretched toward interior seeds.
//
// Complexity:
//
//   - Hex, FCC: O(L) time for L lattice sites visited, O(N/64) words for the
//     occupancy bitset (N = cells).
//   - Assign:   O(S) time and memory.
//
// Errors:
//
//   - ErrInvalidSide: side length ≤ 0, NaN or ±Inf.
//   - ErrTooManyCandidates: the side is so small the lattice would exceed
//     MaxSitesPerCell sites per grid cell.
package lattice
