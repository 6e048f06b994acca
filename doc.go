// SPDX-License-Identifier: MIT

// Package hextile partitions 2D and 3D voxel grids into uniquely labeled
// hexagons, hexagonal prisms or rhombic dodecahedra.
//
// 🚀 What is hextile?
//
//	A pure-Go tessellation engine that writes, for every grid cell, the id
//	of its nearest lattice seed:
//		• Lattices: flat-top hexagonal (2D), face-centered cubic (3D)
//		• Labeling: exact Euclidean feature transform, kd-tree fallback
//		• Prisms: one 2D labeling stamped across depth layers
//		• Masks: forbidden cells suppress seeds and always read 0
//		• Relabeling: dense 1..K ids, 0 kept as background
//
// ✨ Why hextile?
//
//   - Linear time in the number of cells; tens of millions of voxels are fine
//   - Deterministic output for any worker count
//   - Anisotropic voxels: planar and depth scale are independent
//
// Packages:
//
//	volume/       Dims, Labels, Mask, index math and the max-volume guard
//	lattice/      hexagonal and FCC seed planning, mask-aware id assignment
//	nearest/      nearest-seed labeling (propagation or kd-tree)
//	prism/        layer-wise extrusion of a 2D labeling
//	relabel/      consecutive relabeling
//	regions/      region statistics, connectivity and adjacency
//	tessellate/   Generate: the single entry point
//	logging/      leveled logger used across the packages
//	cmd/hextile   command-line front end
//
// Quick example:
//
//	res, err := tessellate.Generate(3, volume.Dims{Depth: 1, Height: 10, Width: 10})
//	// res.Labels.Data holds ids 1..res.Count
//
//	go get github.com/katalvlaran/hextile
package hextile
