// SPDX-License-Identifier: MIT

// Package tessellate is the entry point of hextile: Generate turns a side
// length and a grid shape into a dense label volume of hexagons, hexagonal
// prisms or rhombic dodecahedra.
//
// Paths:
//
//   - Depth == 1: hexagonal lattice, mask applied to seeds, nearest-seed
//     labeling, masked cells forced to 0.
//   - Dodecahedron: FCC lattice, mask applied to seeds, nearest-seed
//     labeling with anisotropic depth weight, masked cells forced to 0.
//   - Prism (default 3D shape): one 2D hexagon labeling extruded across
//     depth layers, then masked. Masked prisms are carved, not re-seeded.
//
// Every path ends with a consecutive relabel, so the output holds exactly
// the ids 1..K plus 0 for background and masked cells.
//
// Scales:
//
//	planar side = side / planar scale   (voxels)
//	depth side  = side / depth scale    (voxels)
//
// Errors:
//
//   - ErrConfiguration wraps every input problem together with the specific
//     sentinel: lattice.ErrInvalidSide, ErrInvalidScale, ErrUnknownShape,
//     volume.ErrInvalidDims, volume.ErrShapeMismatch,
//     nearest.ErrInvalidWorkers, nearest.ErrInvalidStrategy,
//     lattice.ErrTooManyCandidates (sides below roughly 0.16 voxels for
//     hexagons, 0.45 for dodecahedra). Nothing is planned before validation.
//   - volume.ErrTooLarge is returned when the grid exceeds WithMaxCells.
//
// Zero surviving seeds is not an error: the result is all 0 and
// Result.Degenerate is set.
package tessellate
