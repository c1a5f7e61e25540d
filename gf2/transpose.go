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

// transposeCutoff is the side length below which Transpose falls back
// to the naive bit-by-bit kernel rather than recursing further; chosen
// as a small multiple of the word size so the 64x64 block kernel gets
// a chance to run at least once on any matrix worth transposing.
const transposeCutoff = 64

// Transpose returns a fresh ncols x nrows matrix holding the transpose
// of M.
func Transpose(m *Matrix) *Matrix {
	t := NewMatrix(m.ncols, m.nrows)
	transposeInto(t, m)
	return t
}

// TransposeInto writes the transpose of src into dst, which must
// already have shape (src.ncols, src.nrows).
func TransposeInto(dst *Matrix, src *Matrix) {
	requireDims(dst.nrows == src.ncols && dst.ncols == src.nrows, "transpose.go: shape mismatch dst=(%d,%d) src=(%d,%d)", dst.nrows, dst.ncols, src.nrows, src.ncols)
	transposeInto(dst, src)
}

func transposeInto(dst *Matrix, src *Matrix) {
	if src.nrows == 0 || src.ncols == 0 {
		return
	}
	if src.nrows <= transposeCutoff || src.ncols <= transposeCutoff {
		transposeNaive(dst, src)
		return
	}

	mid := (minInt(src.nrows, src.ncols) / (2 * radix)) * radix
	if mid == 0 {
		transposeNaive(dst, src)
		return
	}

	// Quadrant split: src = [[A,B],[C,D]] (rows x cols),
	// dst = [[A^T, C^T], [B^T, D^T]].
	a := src.InitWindow(0, 0, mid, mid)
	b := src.InitWindow(0, mid, mid, src.ncols)
	c := src.InitWindow(mid, 0, src.nrows, mid)
	d := src.InitWindow(mid, mid, src.nrows, src.ncols)

	at := dst.InitWindow(0, 0, mid, mid)
	bt := dst.InitWindow(mid, 0, src.ncols, mid)
	ct := dst.InitWindow(0, mid, mid, src.nrows)
	dt := dst.InitWindow(mid, mid, src.ncols, src.nrows)

	transposeInto(at, a)
	transposeInto(bt, b)
	transposeInto(ct, c)
	transposeInto(dt, d)
}

// transposeNaive transposes src into dst bit by bit, except for the
// common 64x64 case which is routed through the word-level transpose64
// kernel.
func transposeNaive(dst *Matrix, src *Matrix) {
	if src.nrows == radix && src.ncols == radix {
		var rows [radix]word
		for r := 0; r < radix; r++ {
			rows[r] = readBitsRaw(src, r, 0, radix)
		}
		transpose64(&rows)
		for r := 0; r < radix; r++ {
			writeBitsRaw(dst, r, 0, radix, rows[r])
		}
		return
	}
	for r := 0; r < src.nrows; r++ {
		for c := 0; c < src.ncols; c++ {
			if src.GetBit(r, c) != 0 {
				dst.SetBit(c, r)
			} else {
				dst.ClrBit(c, r)
			}
		}
	}
}

// transpose64 transposes a 64x64 block given as 64 words (one per
// row, bit i of word r holding column i) in place, using the
// classic divide-and-conquer bit-block-swap network built from
// blockSwapMask's mask-and-shift stages. Grounded on the original
// library's word-level transpose kernel in misc.c; exercised by the
// Strassen and M4RM base cases when they need a transposed operand.
func transpose64(rows *[64]word) {
	// Stage widths 32,16,8,4,2,1 swap bit-blocks of that width between
	// row pairs whose indices differ only in the corresponding bit.
	for width := uint(32); width >= 1; width >>= 1 {
		mask := blockSwapMask(width)
		for i := uint(0); i < 64; i++ {
			if i&width != 0 {
				continue
			}
			j := i + width
			x := ((rows[i] >> width) ^ rows[j]) & mask
			rows[j] ^= x
			rows[i] ^= x << width
		}
	}
}

// blockSwapMask returns the mask selecting every other run of width
// bits, used by transpose64's bit-interleaving network.
func blockSwapMask(width uint) word {
	switch width {
	case 32:
		return 0x00000000FFFFFFFF
	case 16:
		return 0x0000FFFF0000FFFF
	case 8:
		return 0x00FF00FF00FF00FF
	case 4:
		return 0x0F0F0F0F0F0F0F0F
	case 2:
		return 0x3333333333333333
	case 1:
		return 0x5555555555555555
	default:
		dief("transpose.go: invalid block width %d", width)
		return 0
	}
}
