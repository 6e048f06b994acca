// SPDX-License-Identifier: MIT

package nearest

import "golang.org/x/sync/errgroup"

// chunksPerWorker oversplits the work so uneven lines balance out.
const chunksPerWorker = 4

// parallelFor calls fn over disjoint [lo, hi) ranges covering [0, n),
// running at most workers ranges at once.
func parallelFor(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 || n == 1 {
		fn(0, n)
		return
	}
	chunk := n / (workers * chunksPerWorker)
	if chunk < 1 {
		chunk = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
