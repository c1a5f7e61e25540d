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

// AllocWords is the allocator hook. It returns a freshly zeroed slice of n
// words, aligned to at least 16 bytes for SIMD use (Go's allocator already
// aligns slice backing arrays of word-sized elements well beyond that).
// Tuning-critical callers may replace this, for example to obtain memory
// from a huge-page arena.
var AllocWords func(n int) []word = defaultAllocWords

func defaultAllocWords(n int) []word {
	if n < 0 {
		dief("alloc.go: negative word count %d", n)
	}
	return make([]word, n)
}
