// SPDX-License-Identifier: MIT

package relabel_test

import (
	"bytes"
	"log"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hextile/logging"
	"github.com/katalvlaran/hextile/relabel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConsecutive_Sparse compacts gaps while preserving order and background.
func TestConsecutive_Sparse(t *testing.T) {
	data := []int32{0, 7, 7, 3, 0, 42, 3, 7}
	st, err := relabel.Consecutive(data)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 2, 2, 1, 0, 3, 1, 2}, data)
	assert.Equal(t, relabel.Stats{Count: 3, Max: 42}, st)
}

// TestConsecutive_Idempotent leaves consecutive input unchanged.
func TestConsecutive_Idempotent(t *testing.T) {
	data := []int32{1, 2, 2, 0, 3, 1}
	want := append([]int32(nil), data...)
	st, err := relabel.Consecutive(data)
	require.NoError(t, err)
	assert.Equal(t, want, data)
	assert.Equal(t, 3, st.Count)

	st, err = relabel.Consecutive(data)
	require.NoError(t, err)
	assert.Equal(t, want, data)
	assert.Equal(t, 3, st.Count)
}

// TestConsecutive_AllBackground yields K = 0.
func TestConsecutive_AllBackground(t *testing.T) {
	data := make([]int32, 5)
	st, err := relabel.Consecutive(data)
	require.NoError(t, err)
	assert.Zero(t, st.Count)
	assert.Equal(t, make([]int32, 5), data)

	st, err = relabel.Consecutive(nil)
	require.NoError(t, err)
	assert.Zero(t, st.Count)
}

// TestConsecutive_FallbackMatchesTable forces the sorted-id path and
// compares it with the lookup table on random sparse ids.
func TestConsecutive_FallbackMatchesTable(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	src := make([]int32, 500)
	for i := range src {
		if rng.Intn(5) > 0 {
			src[i] = int32(rng.Intn(1 << 20))
		}
	}
	src[3] = 1<<20 + 5

	table := append([]int32(nil), src...)
	sorted := append([]int32(nil), src...)

	stTable, err := relabel.Consecutive(table)
	require.NoError(t, err)
	assert.False(t, stTable.Fallback)

	var buf bytes.Buffer
	stSorted, err := relabel.Consecutive(sorted,
		relabel.WithMaxTableEntries(1024),
		relabel.WithLogger(logging.New(log.New(&buf, "", 0), logging.WarningLevel)))
	require.NoError(t, err)
	assert.True(t, stSorted.Fallback)
	assert.Contains(t, buf.String(), "1,048,581")

	assert.Equal(t, table, sorted)
	assert.Equal(t, stTable.Count, stSorted.Count)

	// Equivalence classes and order are preserved.
	for i := range src {
		for j := range src {
			require.Equal(t, src[i] == src[j], sorted[i] == sorted[j])
			require.Equal(t, src[i] < src[j], sorted[i] < sorted[j])
		}
	}
	// Output is exactly {1..K} plus background.
	present := map[int32]bool{}
	for _, v := range sorted {
		if v != 0 {
			present[v] = true
		}
	}
	for k := int32(1); k <= int32(stSorted.Count); k++ {
		assert.True(t, present[k], "label %d missing", k)
	}
	assert.Len(t, present, stSorted.Count)
}

// TestConsecutive_Negative rejects negative labels without touching data.
func TestConsecutive_Negative(t *testing.T) {
	data := []int32{4, -1, 4}
	_, err := relabel.Consecutive(data)
	assert.ErrorIs(t, err, relabel.ErrNegativeLabel)
	assert.Equal(t, []int32{4, -1, 4}, data)
}
