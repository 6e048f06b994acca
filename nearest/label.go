// SPDX-License-Identifier: MIT

package nearest

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hextile/lattice"
	"github.com/katalvlaran/hextile/volume"
)

// Label returns a volume congruent to d in which every cell holds the id of
// its nearest seed under the configured metric.
//
// Implementation:
//   - Stage 1: validate options, grid and seeds (bounds, ids, positions).
//   - Stage 2: no seeds → all-background volume with Stats.Empty set.
//   - Stage 3: pick the strategy (Auto: cells/seeds ≥ SparseCellsPerSeed
//     selects KDTree) and run it across the configured workers.
//
// Every seed cell carries its own id. Ties between equidistant seeds are
// broken deterministically but arbitrarily; see the package doc.
//
// Complexity:
//   - Propagation: O(N) time, 12·N bytes.
//   - KDTree: O(S log S + N log S) time, 4·N bytes.
func Label(d volume.Dims, seeds []lattice.Seed, opts ...Option) (*volume.Labels, Stats, error) {
	o := gatherOptions(opts)
	if err := o.validate(); err != nil {
		return nil, Stats{}, err
	}
	if err := d.CheckSize(volume.HardMaxCells); err != nil {
		return nil, Stats{}, err
	}
	if err := validateSeeds(d, seeds); err != nil {
		return nil, Stats{}, err
	}

	start := time.Now()
	stats := Stats{Seeds: len(seeds)}
	if len(seeds) == 0 {
		stats.Empty = true
		o.Logger.Warningf("nearest: no seeds in %s grid, returning background only", d)
		return volume.NewLabels(d), stats, nil
	}

	stats.Strategy = choose(o, d.Cells(), len(seeds))
	var out *volume.Labels
	switch stats.Strategy {
	case KDTree:
		out = labelKDTree(d, seeds, o)
	default:
		out = propagate(d, seeds, o)
	}
	stats.Elapsed = time.Since(start)
	o.Logger.Debugf("nearest: %s labeled %d cells from %d seeds with %d workers in %s",
		stats.Strategy, d.Cells(), len(seeds), o.workers(), stats.Elapsed)
	return out, stats, nil
}

// choose resolves Auto from the seed density.
func choose(o Options, cells, seeds int) Strategy {
	if o.Strategy != Auto {
		return o.Strategy
	}
	if cells/seeds >= o.sparseThreshold() {
		return KDTree
	}
	return Propagation
}

func validateSeeds(d volume.Dims, seeds []lattice.Seed) error {
	taken := make([]uint64, (d.Cells()+63)/64)
	ids := make(map[int32]struct{}, len(seeds))
	for _, s := range seeds {
		if !d.Contains(s.Pos) {
			return fmt.Errorf("%w: seed %d at %s, grid %s", ErrSeedOutOfBounds, s.ID, s.Pos, d)
		}
		if s.ID <= 0 {
			return fmt.Errorf("%w: seed at %s has id %d", ErrInvalidSeedID, s.Pos, s.ID)
		}
		if _, dup := ids[s.ID]; dup {
			return fmt.Errorf("%w: id %d repeated", ErrInvalidSeedID, s.ID)
		}
		ids[s.ID] = struct{}{}

		i := d.Index(s.Pos)
		word, bit := i/64, uint64(1)<<(uint(i)%64)
		if taken[word]&bit != 0 {
			return fmt.Errorf("%w: %s (id %d)", ErrDuplicateSeed, s.Pos, s.ID)
		}
		taken[word] |= bit
	}
	return nil
}
