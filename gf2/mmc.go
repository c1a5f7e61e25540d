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

import "sync"

// mmcSlots bounds the number of cached blocks. The cache is not required
// for correctness -- AllocWords always works -- but avoids heap churn in
// the recursion-heavy Strassen and M4RM table paths.
const mmcSlots = 16

type mmcEntry struct {
	size int
	buf  []word
	used bool
}

// mmc is the process-wide memory cache: a small free-list of reusable word
// buffers keyed by size. It is the only other piece of shared mutable
// state in the engine besides the Gray-code tables, and every access is
// serialized through mu.
type mmcCache struct {
	mu      sync.Mutex
	entries [mmcSlots]mmcEntry
}

var globalMMC mmcCache

// mmcAlloc returns a zeroed buffer of n words, reusing a cached block of
// the same size if one is available.
func (c *mmcCache) mmcAlloc(n int) []word {
	c.mu.Lock()
	for i := range c.entries {
		e := &c.entries[i]
		if !e.used && e.buf != nil && e.size == n {
			e.used = true
			buf := e.buf
			c.mu.Unlock()
			for i := range buf {
				buf[i] = 0
			}
			return buf
		}
	}
	c.mu.Unlock()
	return AllocWords(n)
}

// mmcFree returns a buffer to the cache. A buffer handed out from a slot
// goes back to that slot; any other buffer takes an empty slot, or
// replaces the first unused entry if every slot is occupied.
func (c *mmcCache) mmcFree(buf []word) {
	if len(buf) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		e := &c.entries[i]
		if e.used && len(e.buf) > 0 && &e.buf[0] == &buf[0] {
			e.used = false
			return
		}
	}
	for i := range c.entries {
		e := &c.entries[i]
		if e.buf == nil {
			e.size, e.buf, e.used = len(buf), buf, false
			return
		}
	}
	// No empty slot: evict the first unused entry in favor of this one.
	for i := range c.entries {
		e := &c.entries[i]
		if !e.used {
			e.size, e.buf, e.used = len(buf), buf, false
			return
		}
	}
	// Every slot holds a buffer that is still handed out; drop this one
	// and let the garbage collector reclaim it.
}

func mmcAllocWords(n int) []word { return globalMMC.mmcAlloc(n) }
func mmcFreeWords(buf []word)    { globalMMC.mmcFree(buf) }

// newMMCMatrix allocates an r x c matrix whose backing words are drawn from
// the memory cache rather than a fresh slice, for the short-lived
// temporaries M4RM's row table and Strassen's block sums produce at every
// level of recursion -- exactly the churn spec.md's MMC component exists
// to absorb.
func newMMCMatrix(r, c int) *Matrix {
	requireDims(r >= 0 && c >= 0, "mmc.go: negative dimension (%d,%d)", r, c)
	width := (c + radix - 1) / radix
	m := &Matrix{
		nrows:     r,
		ncols:     c,
		width:     width,
		offset:    0,
		rowstride: computeRowstride(width),
		base:      0,
	}
	if r > 0 && m.rowstride > 0 {
		m.data = mmcAllocWords(r * m.rowstride)
	}
	return m
}

// releaseMMCMatrix returns m's backing storage to the memory cache. m must
// not be read or written afterward.
func releaseMMCMatrix(m *Matrix) {
	mmcFreeWords(m.data)
	m.data = nil
}
