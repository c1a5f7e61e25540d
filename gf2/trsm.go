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

// trsmCutoff is the side length below which the recursive triangular
// solvers fall back to a direct row-by-row substitution instead of
// splitting further.
const trsmCutoff = 2 * radix

// TrsmLowerLeft solves L*X = B in place for X (overwriting B), where L
// is unit lower triangular (an implicit diagonal of ones, matching the
// convention produced by PLE decomposition) and B has the same number
// of rows as L. Uses forward substitution recursively: L is split into
// quadrants [[L11,0],[L21,L22]], and B into [[B1],[B2]]; then
// L11*X1=B1 is solved, B2 is corrected by L21*X1, and L22*X2=B2 is
// solved.
func TrsmLowerLeft(l, b *Matrix) {
	requireDims(l.nrows == l.ncols && l.nrows == b.nrows, "trsm.go: TrsmLowerLeft shape mismatch")
	n := l.nrows
	if n == 0 {
		return
	}
	if n <= trsmCutoff {
		trsmLowerLeftNaive(l, b)
		return
	}
	half := halfSplit(n)
	l11 := l.InitWindow(0, 0, half, half)
	l21 := l.InitWindow(half, 0, n, half)
	l22 := l.InitWindow(half, half, n, n)
	b1 := b.InitWindow(0, 0, half, b.ncols)
	b2 := b.InitWindow(half, 0, n, b.ncols)

	TrsmLowerLeft(l11, b1)
	correction := Mul(l21, b1)
	AddInto(b2, correction)
	TrsmLowerLeft(l22, b2)
}

// TrsmUpperLeft solves U*X = B in place for X, where U is upper
// triangular with a unit diagonal. Mirrors TrsmLowerLeft with the
// recursion run bottom-up.
func TrsmUpperLeft(u, b *Matrix) {
	requireDims(u.nrows == u.ncols && u.nrows == b.nrows, "trsm.go: TrsmUpperLeft shape mismatch")
	n := u.nrows
	if n == 0 {
		return
	}
	if n <= trsmCutoff {
		trsmUpperLeftNaive(u, b)
		return
	}
	half := halfSplit(n)
	u11 := u.InitWindow(0, 0, half, half)
	u12 := u.InitWindow(0, half, half, n)
	u22 := u.InitWindow(half, half, n, n)
	b1 := b.InitWindow(0, 0, half, b.ncols)
	b2 := b.InitWindow(half, 0, n, b.ncols)

	TrsmUpperLeft(u22, b2)
	correction := Mul(u12, b2)
	AddInto(b1, correction)
	TrsmUpperLeft(u11, b1)
}

// TrsmUpperRight solves X*U = B in place for X, where U is upper
// triangular with a unit diagonal and B has the same number of columns
// as U.
func TrsmUpperRight(u, b *Matrix) {
	requireDims(u.nrows == u.ncols && u.nrows == b.ncols, "trsm.go: TrsmUpperRight shape mismatch")
	n := u.nrows
	if n == 0 {
		return
	}
	if n <= trsmCutoff {
		trsmUpperRightNaive(u, b)
		return
	}
	half := halfSplit(n)
	u11 := u.InitWindow(0, 0, half, half)
	u12 := u.InitWindow(0, half, half, n)
	u22 := u.InitWindow(half, half, n, n)
	b1 := b.InitWindow(0, 0, b.nrows, half)
	b2 := b.InitWindow(0, half, b.nrows, n)

	TrsmUpperRight(u11, b1)
	correction := Mul(b1, u12)
	AddInto(b2, correction)
	TrsmUpperRight(u22, b2)
}

// TrsmLowerRight solves X*L = B in place for X, where L is unit lower
// triangular and B has the same number of columns as L.
func TrsmLowerRight(l, b *Matrix) {
	requireDims(l.nrows == l.ncols && l.nrows == b.ncols, "trsm.go: TrsmLowerRight shape mismatch")
	n := l.nrows
	if n == 0 {
		return
	}
	if n <= trsmCutoff {
		trsmLowerRightNaive(l, b)
		return
	}
	half := halfSplit(n)
	l11 := l.InitWindow(0, 0, half, half)
	l21 := l.InitWindow(half, 0, n, half)
	l22 := l.InitWindow(half, half, n, n)
	b1 := b.InitWindow(0, 0, b.nrows, half)
	b2 := b.InitWindow(0, half, b.nrows, n)

	TrsmLowerRight(l22, b2)
	correction := Mul(b2, l21)
	AddInto(b1, correction)
	TrsmLowerRight(l11, b1)
}

func halfSplit(n int) int {
	half := (n / 2 / radix) * radix
	if half == 0 {
		half = radix
	}
	if half >= n {
		half = n - radix
	}
	return half
}

// trsmLowerLeftNaive solves L*X=B by forward substitution one row at a
// time: row i of X depends only on rows 0..i-1 of X (already solved)
// and row i of B, since L has a unit diagonal.
func trsmLowerLeftNaive(l, b *Matrix) {
	n := l.nrows
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if l.GetBit(i, j) != 0 {
				RowAdd(b, i, b, j)
			}
		}
	}
}

// trsmUpperLeftNaive solves U*X=B by backward substitution.
func trsmUpperLeftNaive(u, b *Matrix) {
	n := u.nrows
	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			if u.GetBit(i, j) != 0 {
				RowAdd(b, i, b, j)
			}
		}
	}
}

// trsmUpperRightNaive solves X*U=B column by column, left to right.
func trsmUpperRightNaive(u, b *Matrix) {
	n := u.nrows
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			if u.GetBit(i, j) != 0 {
				colAddInto(b, j, i)
			}
		}
	}
}

// trsmLowerRightNaive solves X*L=B column by column, right to left.
func trsmLowerRightNaive(l, b *Matrix) {
	n := l.nrows
	for j := n - 1; j >= 0; j-- {
		for i := j + 1; i < n; i++ {
			if l.GetBit(i, j) != 0 {
				colAddInto(b, j, i)
			}
		}
	}
}

// colAddInto XORs column src of m into column dst of m, for every row.
func colAddInto(m *Matrix, dst, src int) {
	for r := 0; r < m.nrows; r++ {
		if m.GetBit(r, src) != 0 {
			m.FlipBit(r, dst)
		}
	}
}
