// SPDX-License-Identifier: MIT
// Package sim: chunked lane execution.

package sim

import "golang.org/x/sync/errgroup"

// minChunk keeps tiny batches on the calling goroutine.
const minChunk = 64

// forLanes calls fn(i) for every lane in [0, n). With more than one worker
// the range is cut into contiguous chunks evaluated concurrently; fn must
// only write to index i of pre-allocated outputs.
func (s *Simulator) forLanes(n int, fn func(i int)) {
	workers := s.cfg.workers
	if workers <= 1 || n < 2*minChunk {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait() // lane functions cannot fail
}
