// SPDX-License-Identifier: MIT

// Package prism extrudes a 2D hexagon labeling into a stack of hexagonal
// prisms.
//
// Extrude stamps the base labeling onto every depth layer of the target
// grid. Layers are Thickness voxels deep; each one adds the running maximum
// label of the layer below, so prism ids are globally unique while planar
// boundaries stay bit-identical from layer to layer.
//
// This is a shortcut for z-invariant geometry: one 2D labeling replaces a
// full 3D propagation. Masks cannot steer seeds here, so callers mask the
// extruded volume and relabel it afterwards; near mask boundaries prisms
// are carved rather than reassigned to the nearest legal seed.
//
// Complexity: O(N) time, no memory beyond the output.
package prism
