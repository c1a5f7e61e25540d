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

import "strings"

// paddingWidth is the minimum width (in words) below which no row padding
// is applied. At or above it, odd widths are padded by one word so that
// consecutive power-of-two row groupings stay aligned; this mirrors the
// original library's rowstride computation.
const paddingWidth = 3

// Matrix is a dense m x n matrix over GF(2), packed one bit per column
// into rows of 64-bit words. A Matrix may be a window: a non-owning view
// that reuses another Matrix's backing storage with a narrowed row/column
// range and a possibly nonzero column offset. The parent must outlive
// every window created from it; freeing a window only releases its
// header (Free is a no-op in Go beyond clearing the receiver, since the
// garbage collector owns the backing array, but the method exists so
// window/owner lifetime discipline stays visible in calling code).
type Matrix struct {
	nrows, ncols int
	width        int // words per row holding valid bits
	offset       int // column offset of the first valid bit, in [0,63]
	rowstride    int // words between the start of consecutive rows
	base         int // index into data where row 0 starts
	data         []word
	windowed     bool
}

// NRows returns the number of rows.
func (m *Matrix) NRows() int { return m.nrows }

// NCols returns the number of columns.
func (m *Matrix) NCols() int { return m.ncols }

// Offset returns the column offset of the first valid bit within word 0
// of each row.
func (m *Matrix) Offset() int { return m.offset }

// Width returns the number of words per row that hold valid bits.
func (m *Matrix) Width() int { return m.width }

// IsWindowed reports whether M reuses another matrix's storage.
func (m *Matrix) IsWindowed() bool { return m.windowed }

func computeRowstride(width int) int {
	if width < paddingWidth || width%2 == 0 {
		return width
	}
	return width + 1
}

// NewMatrix allocates a fresh, zeroed r x c matrix. Use NewMatrix for
// top-level matrices; windows are created with InitWindow.
func NewMatrix(r, c int) *Matrix {
	requireDims(r >= 0 && c >= 0, "matrix.go: negative dimension (%d,%d)", r, c)
	width := (c + radix - 1) / radix
	if width == 0 {
		width = 0
	}
	rowstride := computeRowstride(width)
	m := &Matrix{
		nrows:     r,
		ncols:     c,
		width:     width,
		offset:    0,
		rowstride: rowstride,
		base:      0,
	}
	if r > 0 && rowstride > 0 {
		m.data = AllocWords(r * rowstride)
	}
	return m
}

// InitWindow returns a window into M covering rows [lowr,highr) and
// columns [lowc,highc). The window shares M's backing storage; M must
// outlive it.
func (m *Matrix) InitWindow(lowr, lowc, highr, highc int) *Matrix {
	requireDims(0 <= lowr && lowr <= highr && highr <= m.nrows, "matrix.go: row window [%d,%d) out of bounds for %d rows", lowr, highr, m.nrows)
	requireDims(0 <= lowc && lowc <= highc && highc <= m.ncols, "matrix.go: col window [%d,%d) out of bounds for %d cols", lowc, highc, m.ncols)

	nrows := highr - lowr
	ncols := highc - lowc
	offset := (m.offset + lowc) % radix
	width := (offset + ncols + radix - 1) / radix
	wordSkip := (m.offset + lowc) / radix

	return &Matrix{
		nrows:     nrows,
		ncols:     ncols,
		width:     width,
		offset:    offset,
		rowstride: m.rowstride,
		base:      m.base + lowr*m.rowstride + wordSkip,
		data:      m.data,
		windowed:  true,
	}
}

// Free releases M's header. Owning matrices release their backing array
// for garbage collection; windows must never be used after their parent
// is freed, but Free itself only clears the receiver.
func (m *Matrix) Free() {
	m.data = nil
	m.nrows, m.ncols, m.width, m.rowstride = 0, 0, 0, 0
}

// row returns the word slice backing row i, including any excess bits in
// the first and last word.
func (m *Matrix) row(i int) []word {
	start := m.base + i*m.rowstride
	return m.data[start : start+m.width]
}

// firstWordMask returns the mask of valid bits in word 0 of a row.
func (m *Matrix) firstWordMask() word {
	if m.width == 1 {
		return middleMask(m.ncols, m.offset)
	}
	return rightMask(radix - m.offset)
}

// lastWordMask returns the mask of valid bits in the last word of a row.
// Only meaningful when width > 1; single-word rows use firstWordMask.
func (m *Matrix) lastWordMask() word {
	return leftMask((m.offset + m.ncols) % radix)
}

// maskExcess zeroes every don't-care bit outside [offset, offset+ncols)
// in every row. Operations are never required to do this -- excess bits
// are permitted to hold garbage -- but tests and callers that want a
// canonical bit pattern (for hashing or byte-exact comparison) may call
// it explicitly.
func (m *Matrix) maskExcess() {
	if m.width == 0 {
		return
	}
	first := m.firstWordMask()
	last := m.lastWordMask()
	for r := 0; r < m.nrows; r++ {
		row := m.row(r)
		if m.width == 1 {
			row[0] &= first
			continue
		}
		row[0] &= first
		row[m.width-1] &= last
	}
}

// Copy returns a freshly allocated, non-windowed copy of M with the same
// shape and column offset set to zero.
func (m *Matrix) Copy() *Matrix {
	dst := NewMatrix(m.nrows, m.ncols)
	CopyRows(dst, 0, m, 0, m.nrows)
	return dst
}

// CopyRows copies n rows starting at srcRow of src into dst starting at
// dstRow. src and dst may have different offsets; when they differ, each
// row is copied in chunks of up to 64 columns via readBitsRaw and
// writeBitsRaw.
func CopyRows(dst *Matrix, dstRow int, src *Matrix, srcRow, n int) {
	requireDims(dst.ncols == src.ncols, "matrix.go: CopyRows column mismatch %d != %d", dst.ncols, src.ncols)
	for i := 0; i < n; i++ {
		copyRow(dst, dstRow+i, src, srcRow+i)
	}
}

func copyRow(dst *Matrix, dr int, src *Matrix, sr int) {
	if dst.offset == src.offset {
		drow := dst.row(dr)
		srow := src.row(sr)
		copy(drow, srow)
		drow[0] = (drow[0] &^ dst.firstWordMask()) | (srow[0] & dst.firstWordMask())
		if dst.width > 1 {
			drow[dst.width-1] = (drow[dst.width-1] &^ dst.lastWordMask()) | (srow[dst.width-1] & dst.lastWordMask())
		}
		return
	}
	for c := 0; c < dst.ncols; {
		n := minInt(radix, dst.ncols-c)
		bits := readBitsRaw(src, sr, c, n)
		writeBitsRaw(dst, dr, c, n, bits)
		c += n
	}
}

// SetUi sets M to the identity matrix (when value is 1) or the zero
// matrix (when value is 0). For non-square matrices the identity pattern
// is written along the main diagonal up to min(nrows,ncols).
func (m *Matrix) SetUi(value int) {
	for r := 0; r < m.nrows; r++ {
		row := m.row(r)
		for i := range row {
			row[i] = 0
		}
	}
	if value == 0 {
		return
	}
	n := minInt(m.nrows, m.ncols)
	for i := 0; i < n; i++ {
		m.WriteBit(i, i, 1)
	}
}

// Equal reports whether A and B have the same shape and the same bit in
// every valid position. Excess bits are ignored.
func Equal(a, b *Matrix) bool {
	if a.nrows != b.nrows || a.ncols != b.ncols {
		return false
	}
	for r := 0; r < a.nrows; r++ {
		for c := 0; c < a.ncols; {
			n := minInt(radix, a.ncols-c)
			if readBitsRaw(a, r, c, n) != readBitsRaw(b, r, c, n) {
				return false
			}
			c += n
		}
	}
	return true
}

// IsZero reports whether every valid bit of M is zero.
func (m *Matrix) IsZero() bool {
	for r := 0; r < m.nrows; r++ {
		for c := 0; c < m.ncols; {
			n := minInt(radix, m.ncols-c)
			if readBitsRaw(m, r, c, n) != 0 {
				return false
			}
			c += n
		}
	}
	return true
}

// String renders M as rows of '0'/'1' characters, most significant
// column last, matching the bit layout described by the package's
// read_bits contract.
func (m *Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.nrows; r++ {
		for c := 0; c < m.ncols; c++ {
			if m.GetBit(r, c) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
