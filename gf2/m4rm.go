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

// m4rmCutoff is the row count below which M4RM multiply falls back to
// the naive kernel rather than paying for Gray-code table construction.
const m4rmCutoff = 2 * radix

// MulM4RM computes C = A*B over GF(2) using the Method of Four
// Russians: B's rows are grouped into blocks of k rows, every
// GF(2)-linear combination of each block's rows is precomputed into a
// table indexed by Gray code, and each row of C is then built by
// looking up and XORing one table row per block instead of one row of
// B per set bit of A. k is chosen by optK from A's row count and B's
// column count, capped at MAXKAY.
func MulM4RM(a, b *Matrix) *Matrix {
	requireDims(a.ncols == b.nrows, "m4rm.go: MulM4RM shape mismatch %d != %d", a.ncols, b.nrows)
	c := NewMatrix(a.nrows, b.ncols)
	MulM4RMInto(c, a, b)
	return c
}

// MulM4RMInto computes dst = A*B using M4RM, overwriting dst.
func MulM4RMInto(dst, a, b *Matrix) {
	requireDims(dst.nrows == a.nrows && dst.ncols == b.ncols && a.ncols == b.nrows, "m4rm.go: MulM4RMInto shape mismatch")
	dst.SetUi(0)
	addMulM4RM(dst, a, b)
}

// addMulM4RM computes dst += A*B using M4RM.
func addMulM4RM(dst, a, b *Matrix) {
	if a.nrows < m4rmCutoff || b.nrows < radix {
		tmp := MulNaive(a, b)
		AddInto(dst, tmp)
		return
	}

	k := optK(a.nrows, b.ncols)
	blocks := (b.nrows + k - 1) / k

	// table holds one entry (a single row of width dst.ncols) per
	// possible value of a k-bit block of A's columns, rebuilt for each
	// block of B's rows as we sweep down; the last block may be
	// narrower than k, in which case only its low 2^rowsInBlock
	// entries are populated and read.
	tableSize := 1 << uint(k)
	table := make([]*Matrix, tableSize)
	for i := range table {
		table[i] = newMMCMatrix(1, dst.ncols)
	}
	defer func() {
		for _, t := range table {
			releaseMMCMatrix(t)
		}
	}()

	for blk := 0; blk < blocks; blk++ {
		startRow := blk * k
		rowsInBlock := minInt(k, b.nrows-startRow)
		buildGrayTable(table, grayTable(rowsInBlock), b, startRow, rowsInBlock)

		for i := 0; i < a.nrows; i++ {
			idx := readBitsRaw(a, i, startRow, rowsInBlock)
			if idx == 0 {
				continue
			}
			RowAdd(dst, i, table[int(idx)], 0)
		}
	}
}

// buildGrayTable fills table[0..2^rowsInBlock) with every GF(2)-linear
// combination of the rowsInBlock rows of b starting at startRow,
// visiting combinations in Gray-code order so each step differs from
// the last by exactly one row XOR (gc.inc[i] names which row to
// toggle, gc.ord[i] is the resulting index), following the incremental
// table construction described for the engine's M4RM multiplication.
func buildGrayTable(table []*Matrix, gc *grayCode, b *Matrix, startRow, rowsInBlock int) {
	size := 1 << uint(rowsInBlock)
	table[gc.ord[0]].SetUi(0)
	for i := 1; i < size; i++ {
		row := gc.inc[i-1]
		ord := gc.ord[i]
		prevOrd := gc.ord[i-1]
		CopyRows(table[ord], 0, table[prevOrd], 0, 1)
		RowAdd(table[ord], 0, b, startRow+row)
	}
}
