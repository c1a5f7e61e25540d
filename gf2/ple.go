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

// PLEResult holds the factors of a PLE decomposition of some m x n
// matrix A of rank r: A = P * L * E * Q, where L is m x r unit lower
// trapezoidal, E is r x n row echelon with a pivot (value 1) as the
// leading entry of every row, P undoes a sequence of row
// transpositions, and Q undoes a sequence of column transpositions.
// Reconstructing A from the factors therefore applies P and Q's
// transposition traces in reverse, via ApplyRowsLeftTrans and
// ApplyColsRightTrans.
type PLEResult struct {
	L    *Matrix
	E    *Matrix
	P    *Permutation
	Q    *Permutation
	Rank int
}

// PLE computes a PLE decomposition of A without modifying A, using
// M4RI-style Gaussian elimination with full pivoting: at each step the
// leftmost column with a nonzero entry among the not-yet-finalized
// rows is chosen, brought to the current pivot position by a row swap
// and a column swap, and used to eliminate the column from every row
// below it.
//
// This is a row-by-row reference implementation rather than the
// blocked, Gray-code-accelerated construction used by MulM4RM; a
// block/M4RI-accelerated PLE is possible by eliminating many rows at
// once per pivot block the way addMulM4RM eliminates many rows per
// multiply block, but is not implemented here.
func PLE(a *Matrix) *PLEResult {
	m, n := a.nrows, a.ncols
	work := a.Copy()
	p := NewPermutation(m)
	q := NewPermutation(n)
	l := NewMatrix(m, minInt(m, n))

	r := 0
	for c := 0; c < n && r < m; c++ {
		pivotRow := -1
		for i := r; i < m; i++ {
			if work.GetBit(i, c) != 0 {
				pivotRow = i
				break
			}
		}
		if pivotRow == -1 {
			continue
		}
		if pivotRow != r {
			RowSwap(work, r, pivotRow)
			RowSwap(l, r, pivotRow)
		}
		p.Values[r] = pivotRow
		if c != r {
			ColSwap(work, r, c)
		}
		q.Values[r] = c

		l.WriteBit(r, r, 1)
		for i := r + 1; i < m; i++ {
			if work.GetBit(i, r) != 0 {
				l.WriteBit(i, r, 1)
				RowAdd(work, i, work, r)
			}
		}
		r++
	}

	e := NewMatrix(r, n)
	CopyRows(e, 0, work, 0, r)

	var lTrimmed *Matrix
	if r == l.ncols {
		lTrimmed = l
	} else {
		lTrimmed = NewMatrix(m, r)
		for row := 0; row < m; row++ {
			for col := 0; col < r; col++ {
				if l.GetBit(row, col) != 0 {
					lTrimmed.SetBit(row, col)
				}
			}
		}
	}

	return &PLEResult{L: lTrimmed, E: e, P: p, Q: q, Rank: r}
}

// Reconstruct returns P * L * E * Q, the original matrix the
// decomposition was computed from.
func (res *PLEResult) Reconstruct() *Matrix {
	a := Mul(res.L, res.E)
	ApplyRowsLeftTrans(a, res.P)
	ApplyColsRightTrans(a, res.Q)
	return a
}
