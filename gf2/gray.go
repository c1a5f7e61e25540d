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

// MAXKAY bounds the table parameter k used by the Method-of-Four-Russians
// engines: tables never exceed 2^MAXKAY rows.
const MAXKAY = 10

// grayCode holds the reflected binary Gray-code sequence and increment
// table for one value of k. ord[i] is the i-th Gray code; inc[j] names the
// bit position that flips going from ord[j] to ord[j+1].
type grayCode struct {
	ord []int
	inc []int
}

var (
	codebook    [MAXKAY + 1]*grayCode
	codebookMu  sync.Mutex
	codebookSet [MAXKAY + 1]sync.Once
)

// grayCodeOf returns the bit pattern of the number-th reflected binary Gray
// code of the given bit length.
func grayCodeOf(number, length int) int {
	lastbit := 0
	res := 0
	for i := length - 1; i >= 0; i-- {
		bit := number & (1 << uint(i))
		res |= (lastbit >> 1) ^ bit
		lastbit = bit
	}
	return res
}

func buildGrayCode(l int) *grayCode {
	n := 1 << uint(l)
	gc := &grayCode{ord: make([]int, n), inc: make([]int, n)}
	for i := 0; i < n; i++ {
		gc.ord[i] = grayCodeOf(i, l)
	}
	for i := l; i > 0; i-- {
		step := 1 << uint(l-i)
		for j := 1; j < (1<<uint(i))+1; j++ {
			gc.inc[j*step-1] = l - i
		}
	}
	return gc
}

// grayTable returns the Gray-code table for k, building it on first use.
// Tables are built once and are safe to share for reads across goroutines
// thereafter, matching the process-wide init/teardown discipline described
// for the engine's only piece of shared mutable state besides the MMC.
func grayTable(k int) *grayCode {
	if k < 1 || k > MAXKAY {
		dief("gray.go: k=%d out of range [1,%d]", k, MAXKAY)
	}
	codebookSet[k].Do(func() {
		codebookMu.Lock()
		defer codebookMu.Unlock()
		codebook[k] = buildGrayCode(k)
	})
	return codebook[k]
}

// resetGrayTables forces a rebuild of all Gray-code tables on next use.
// Exposed for tests that need to exercise the lazy-init path repeatably.
func resetGrayTables() {
	codebookMu.Lock()
	defer codebookMu.Unlock()
	for k := 1; k <= MAXKAY; k++ {
		codebook[k] = nil
		codebookSet[k] = sync.Once{}
	}
}

func log2Floor(v int) int {
	r := 0
	for _, s := range []int{16, 8, 4, 2, 1} {
		if v>>uint(s) != 0 {
			v >>= uint(s)
			r |= s
		}
	}
	return r
}

// optK picks the Method-of-Four-Russians table parameter k automatically,
// following the heuristic k = max(1, round(0.75*ceil(log2(min(a,b))))),
// capped at MAXKAY.
func optK(a, b int) int {
	n := minInt(a, b)
	if n < 1 {
		n = 1
	}
	ceilLog := log2Floor(n)
	if n&(n-1) != 0 {
		ceilLog++
	}
	k := int(0.75*float64(ceilLog) + 0.5)
	if k < 1 {
		k = 1
	}
	return minInt(MAXKAY, k)
}
