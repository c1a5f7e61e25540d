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

// Rank returns the GF(2) row rank of A, computed as a side effect of a
// PLE decomposition.
func Rank(a *Matrix) int {
	return PLE(a).Rank
}

// Echelonize reduces A to reduced row echelon form in place and
// returns its rank and the list of pivot columns (one per pivot row,
// in row order). Unlike PLE, Echelonize performs no column
// permutation and eliminates both above and below each pivot, so the
// pivot columns of the result carry the identity submatrix directly
// rather than requiring Q to be applied.
func Echelonize(a *Matrix) (rank int, pivotCols []int) {
	m, n := a.nrows, a.ncols
	row := 0
	for col := 0; col < n && row < m; col++ {
		pivot := -1
		for i := row; i < m; i++ {
			if a.GetBit(i, col) != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}
		if pivot != row {
			RowSwap(a, row, pivot)
		}
		for i := 0; i < m; i++ {
			if i != row && a.GetBit(i, col) != 0 {
				RowAdd(a, i, a, row)
			}
		}
		pivotCols = append(pivotCols, col)
		row++
	}
	return row, pivotCols
}

// KernelRight returns a basis for the right null space of A, {x in
// GF(2)^n : A*x = 0}, as the rows of a (n-rank) x n matrix; row i of
// the result, reinterpreted as a column vector via Transpose, is a
// basis vector.
func KernelRight(a *Matrix) *Matrix {
	n := a.ncols
	work := a.Copy()
	rank, pivotCols := Echelonize(work)

	isPivot := make([]bool, n)
	for _, c := range pivotCols {
		isPivot[c] = true
	}
	var freeCols []int
	for c := 0; c < n; c++ {
		if !isPivot[c] {
			freeCols = append(freeCols, c)
		}
	}

	k := NewMatrix(len(freeCols), n)
	for row, f := range freeCols {
		k.WriteBit(row, f, 1)
		for pivotRow, pc := range pivotCols {
			if pivotRow >= rank {
				break
			}
			if work.GetBit(pivotRow, f) != 0 {
				k.WriteBit(row, pc, 1)
			}
		}
	}
	return k
}

// KernelLeft returns a basis for the left null space of A, {y in
// GF(2)^m : y*A = 0}, as the rows of a (m-rank) x m matrix. It reduces
// to KernelRight applied to A's transpose, since y*A=0 iff
// transpose(A)*transpose(y) = 0.
func KernelLeft(a *Matrix) *Matrix {
	return KernelRight(Transpose(a))
}

// SolveLeft solves A*X = B for X given a square nonsingular A and a
// right-hand side B with the same number of rows, by Gauss-Jordan
// elimination on the augmented matrix [A|B]. Returns ErrSingular if A
// does not have full rank.
func SolveLeft(a, b *Matrix) (*Matrix, error) {
	requireDims(a.nrows == a.ncols, "derived.go: SolveLeft requires a square coefficient matrix, got (%d,%d)", a.nrows, a.ncols)
	requireDims(b.nrows == a.nrows, "derived.go: SolveLeft row mismatch %d != %d", b.nrows, a.nrows)
	n := a.nrows
	k := b.ncols

	w := NewMatrix(n, n+k)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if a.GetBit(r, c) != 0 {
				w.SetBit(r, c)
			}
		}
		for c := 0; c < k; c++ {
			if b.GetBit(r, c) != 0 {
				w.SetBit(r, n+c)
			}
		}
	}

	row := 0
	for col := 0; col < n; col++ {
		pivot := -1
		for i := row; i < n; i++ {
			if w.GetBit(i, col) != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			return nil, ErrSingular
		}
		if pivot != row {
			RowSwap(w, row, pivot)
		}
		for i := 0; i < n; i++ {
			if i != row && w.GetBit(i, col) != 0 {
				RowAdd(w, i, w, row)
			}
		}
		row++
	}

	x := NewMatrix(n, k)
	for r := 0; r < n; r++ {
		for c := 0; c < k; c++ {
			if w.GetBit(r, n+c) != 0 {
				x.SetBit(r, c)
			}
		}
	}
	return x, nil
}

// Invert returns the multiplicative inverse of a square nonsingular A,
// computed by solving A*X = I.
func Invert(a *Matrix) (*Matrix, error) {
	requireDims(a.nrows == a.ncols, "derived.go: Invert requires a square matrix, got (%d,%d)", a.nrows, a.ncols)
	ident := NewMatrix(a.nrows, a.nrows)
	ident.SetUi(1)
	return SolveLeft(a, ident)
}
