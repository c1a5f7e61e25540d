// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gf2

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelRowBlocks splits M's rows into up to GOMAXPROCS disjoint,
// contiguous row ranges and calls fn once per range concurrently,
// passing a window of M covering exactly that range. Because the
// ranges are disjoint row windows into the same backing array, every
// goroutine only ever touches words the others don't, so no
// additional synchronization is required beyond the errgroup barrier
// at the end. Used by callers that want to parallelize a row-local
// transform -- masking, random fill, or a per-row scan -- over a
// large matrix.
func ParallelRowBlocks(m *Matrix, fn func(block *Matrix, startRow int) error) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > m.nrows {
		workers = m.nrows
	}
	if workers <= 1 {
		if m.nrows > 0 {
			return fn(m.InitWindow(0, 0, m.nrows, m.ncols), 0)
		}
		return nil
	}

	g, _ := errgroup.WithContext(context.Background())
	rowsPerWorker := (m.nrows + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		if start >= m.nrows {
			break
		}
		end := minInt(start+rowsPerWorker, m.nrows)
		block := m.InitWindow(start, 0, end, m.ncols)
		startRow := start
		g.Go(func() error {
			return fn(block, startRow)
		})
	}
	return g.Wait()
}
