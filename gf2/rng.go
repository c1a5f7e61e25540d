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

import "math/rand/v2"

// RandomWord is the RNG hook: it returns a uniformly distributed 64-bit
// value. Callers that need a seeded or cryptographic source install their
// own; the default delegates straight to the standard library's PRNG.
var RandomWord func() word = defaultRandomWord

func defaultRandomWord() word {
	return rand.Uint64()
}

// RandomMatrix fills every valid bit of M with coin flips of the given
// density (0.0..1.0) using the RandomWord hook, leaving excess bits
// outside [offset, offset+ncols) untouched per the don't-care contract.
// density 0.5 fills up to 64 columns at a time via RandomWord; other
// densities fall back to per-bit sampling.
func RandomMatrix(m *Matrix, density float64) {
	if density == 0.5 {
		for r := 0; r < m.nrows; r++ {
			for c := 0; c < m.ncols; c += radix {
				n := minInt(radix, m.ncols-c)
				writeBitsRaw(m, r, c, n, RandomWord()&leftMask(n))
			}
		}
		return
	}
	for r := 0; r < m.nrows; r++ {
		for c := 0; c < m.ncols; c++ {
			if density >= 1.0 || rand.Float64() < density {
				m.WriteBit(r, c, 1)
			} else {
				m.WriteBit(r, c, 0)
			}
		}
	}
}
