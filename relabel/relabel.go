// SPDX-License-Identifier: MIT

package relabel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/hextile/logging"
)

// ErrNegativeLabel indicates a label below 0.
var ErrNegativeLabel = errors.New("relabel: labels must be >= 0")

// DefaultMaxTableEntries caps the dense lookup table at 256 MiB.
const DefaultMaxTableEntries = 1 << 26

// Option mutates Options.
type Option func(*Options)

// Options configures Consecutive.
type Options struct {
	// MaxTableEntries is the largest id+1 served by the dense table.
	MaxTableEntries int
	// Logger receives the fallback warning.
	Logger logging.Logger
}

// WithMaxTableEntries caps the dense table; n <= 0 restores the default.
func WithMaxTableEntries(n int) Option {
	return func(o *Options) { o.MaxTableEntries = n }
}

// WithLogger routes the fallback warning to l.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) { o.Logger = logging.OrNop(l) }
}

// Stats describes one Consecutive call.
type Stats struct {
	// Count is K, the number of distinct non-zero labels.
	Count int
	// Max is the largest label before relabeling.
	Max int32
	// Fallback is true when the sorted-id path replaced the lookup table.
	Fallback bool
}

// Consecutive rewrites labels in place to 1..K; see the package doc.
func Consecutive(labels []int32, opts ...Option) (Stats, error) {
	o := Options{MaxTableEntries: DefaultMaxTableEntries, Logger: logging.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.MaxTableEntries <= 0 {
		o.MaxTableEntries = DefaultMaxTableEntries
	}

	var st Stats
	for i, v := range labels {
		if v < 0 {
			return Stats{}, fmt.Errorf("%w: label %d at index %d", ErrNegativeLabel, v, i)
		}
		if v > st.Max {
			st.Max = v
		}
	}
	if st.Max == 0 {
		return st, nil
	}

	if int64(st.Max)+1 <= int64(o.MaxTableEntries) {
		st.Count = byTable(labels, st.Max)
		return st, nil
	}

	st.Fallback = true
	o.Logger.Warningf("relabel: max label %s exceeds the %s-entry lookup table, using sorted ids",
		humanize.Comma(int64(st.Max)), humanize.Comma(int64(o.MaxTableEntries)))
	st.Count = bySortedIDs(labels)
	return st, nil
}

// byTable remaps through a dense table indexed by old id.
func byTable(labels []int32, max int32) int {
	lut := make([]int32, int(max)+1)
	for _, v := range labels {
		lut[v] = 1
	}
	lut[0] = 0
	var k int32
	for id := 1; id <= int(max); id++ {
		if lut[id] != 0 {
			k++
			lut[id] = k
		}
	}
	if k == max {
		return int(k)
	}
	for i, v := range labels {
		labels[i] = lut[v]
	}
	return int(k)
}

// bySortedIDs remaps through the sorted distinct ids.
func bySortedIDs(labels []int32) int {
	seen := make(map[int32]struct{})
	for _, v := range labels {
		if v != 0 {
			seen[v] = struct{}{}
		}
	}
	ids := make([]int32, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Neighbouring cells usually repeat, so remember the last hit.
	var lastOld, lastNew int32
	for i, v := range labels {
		if v == 0 {
			continue
		}
		if v != lastOld {
			lastOld = v
			lastNew = int32(sort.Search(len(ids), func(j int) bool { return ids[j] >= v })) + 1
		}
		labels[i] = lastNew
	}
	return len(ids)
}
