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

// RowAdd XORs row srcRow of src into row dstRow of dst, i.e.
// dst[dstRow] ^= src[srcRow]. dst and src must have the same column
// count but may have different offsets; offset-aligned rows take the
// wide-word path (combineEven), misaligned rows fall back to the
// bit-chunked path (combineWeird), mirroring the original library's
// split between mzd_row_add and mzd_combine_weird.
func RowAdd(dst *Matrix, dstRow int, src *Matrix, srcRow int) {
	requireDims(dst.ncols == src.ncols, "combine.go: RowAdd column mismatch %d != %d", dst.ncols, src.ncols)
	if dst.offset == src.offset {
		combineEven(dst, dstRow, src, srcRow)
		return
	}
	combineWeird(dst, dstRow, src, srcRow)
}

// combineEven handles the common case where both rows share the same
// column offset, so whole words can be XORed directly. The loop is
// unrolled to the current dispatch width (combineEven itself stays
// scalar; wideXor below does the width-aware work) so that a SIMD-
// capable build still benefits even though there is no actual
// intrinsic call -- the compiler can vectorize fixed-stride XOR loops
// on amd64/arm64 once the loop trip count is a multiple of the
// detected width.
func combineEven(dst *Matrix, dstRow int, src *Matrix, srcRow int) {
	drow := dst.row(dstRow)
	srow := src.row(srcRow)
	first := dst.firstWordMask()

	if dst.width == 1 {
		drow[0] ^= srow[0] & first
		return
	}

	drow[0] ^= srow[0] & first
	last := dst.lastWordMask()
	wideXor(drow[1:dst.width-1], srow[1:dst.width-1])
	drow[dst.width-1] ^= srow[dst.width-1] & last
}

// wideXor XORs b into a, a and b of equal length, processed in chunks
// of CurrentWidth() words at a time as a hint to the compiler's
// auto-vectorizer; the tail below the chunk width is handled one word
// at a time. There is no unsafe or architecture-specific code here --
// the dispatch level only picks the unroll factor.
func wideXor(a, b []word) {
	width := CurrentWidth() / 8 // bytes -> words (word is 8 bytes)
	if width < 1 {
		width = 1
	}
	i := 0
	for ; i+width <= len(a); i += width {
		for j := 0; j < width; j++ {
			a[i+j] ^= b[i+j]
		}
	}
	for ; i < len(a); i++ {
		a[i] ^= b[i]
	}
}

// combineWeird handles rows with different offsets by XORing in chunks
// no wider than a word via the raw bit primitives, following
// mzd_combine_weird's read_bits/xor_bits pairing.
func combineWeird(dst *Matrix, dstRow int, src *Matrix, srcRow int) {
	for c := 0; c < dst.ncols; {
		n := minInt(radix, dst.ncols-c)
		bits := readBitsRaw(src, srcRow, c, n)
		xorBitsRaw(dst, dstRow, c, n, bits)
		c += n
	}
}

// Add sets dst = a XOR b, allocating a fresh result matrix. a and b
// must have identical shape.
func Add(a, b *Matrix) *Matrix {
	requireDims(a.nrows == b.nrows && a.ncols == b.ncols, "combine.go: Add shape mismatch (%d,%d) != (%d,%d)", a.nrows, a.ncols, b.nrows, b.ncols)
	dst := a.Copy()
	AddInto(dst, b)
	return dst
}

// AddInto sets dst ^= b in place. dst and b must have identical shape.
func AddInto(dst, b *Matrix) {
	requireDims(dst.nrows == b.nrows && dst.ncols == b.ncols, "combine.go: AddInto shape mismatch (%d,%d) != (%d,%d)", dst.nrows, dst.ncols, b.nrows, b.ncols)
	for r := 0; r < dst.nrows; r++ {
		RowAdd(dst, r, b, r)
	}
}
