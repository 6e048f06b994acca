// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hextile/volume"
)

// Assign turns candidates into seeds: candidates outside d or on a masked
// cell are dropped, and the survivors are numbered 1..S in input order.
// Masking before numbering keeps the id range dense and lets forbidden
// regions be claimed by the nearest legal seed. A nil mask keeps everything.
func Assign(d volume.Dims, candidates []volume.Point, mask *volume.Mask) ([]Seed, error) {
	if err := mask.Check(d); err != nil {
		return nil, err
	}
	seeds := make([]Seed, 0, len(candidates))
	for _, p := range candidates {
		if !d.Contains(p) || mask.Masked(p) {
			continue
		}
		if len(seeds) == math.MaxInt32 {
			return nil, fmt.Errorf("%w: more than %d seeds", ErrTooManyCandidates, math.MaxInt32)
		}
		seeds = append(seeds, Seed{Pos: p, ID: int32(len(seeds) + 1)})
	}
	return seeds, nil
}
