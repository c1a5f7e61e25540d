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

// StrassenCutoff is the side length (in rows/columns) below which
// Mul falls back to M4RM instead of recursing another level of
// Strassen-Winograd. It is a package variable rather than a constant
// so benchmarks and tests can tune it without rebuilding tables.
var StrassenCutoff = 1024

// Mul computes C = A*B over GF(2), dispatching to Strassen-Winograd
// recursion for large operands and to M4RM at or below StrassenCutoff.
// This is the multiplication entry point most callers should use.
func Mul(a, b *Matrix) *Matrix {
	requireDims(a.ncols == b.nrows, "strassen.go: Mul shape mismatch %d != %d", a.ncols, b.nrows)
	c := NewMatrix(a.nrows, b.ncols)
	MulInto(c, a, b)
	return c
}

// MulInto computes dst = A*B, overwriting dst.
func MulInto(dst, a, b *Matrix) {
	requireDims(dst.nrows == a.nrows && dst.ncols == b.ncols && a.ncols == b.nrows, "strassen.go: MulInto shape mismatch")
	if a.nrows <= StrassenCutoff && a.ncols <= StrassenCutoff && b.ncols <= StrassenCutoff {
		MulM4RMInto(dst, a, b)
		return
	}
	strassenMul(dst, a, b)
}

// halfBoundary returns the largest multiple of radix not exceeding
// n/2, so that splitting a dimension of size n at this boundary
// yields two halves of size halfBoundary(n) each plus a remainder
// of at most 2*radix-1, with every recursive quadrant staying
// word-aligned.
func halfBoundary(n int) int {
	return (n / 2 / radix) * radix
}

// addMMC returns a XOR b, like Add, but backs the result with the memory
// cache instead of a fresh allocation.
func addMMC(a, b *Matrix) *Matrix {
	dst := newMMCMatrix(a.nrows, a.ncols)
	CopyRows(dst, 0, a, 0, a.nrows)
	AddInto(dst, b)
	return dst
}

// mulMMC returns a*b, like Mul, but backs the result with the memory
// cache instead of a fresh allocation.
func mulMMC(a, b *Matrix) *Matrix {
	dst := newMMCMatrix(a.nrows, b.ncols)
	MulInto(dst, a, b)
	return dst
}

// strassenMul implements the Strassen-Winograd variant for GF(2): 7
// recursive multiplications and 15 additions in place of 8
// multiplications and 4 additions, trading multiply count for a few
// extra XOR passes, which is the right trade since XOR is far cheaper
// than a recursive multiply at every level above the M4RM cutoff.
//
// A, B and C are each split so that the "main" block -- rows/cols
// [0,2*am), [0,2*an), [0,2*bp) -- divides into four quadrants of
// identical shape am x an (resp. an x bp, am x bp), which is what the
// fifteen additions below require; any leftover row of A, column of B,
// or shared inner dimension is folded back in directly afterward
// rather than threaded through the recursion, matching the original
// library's "cut to even, patch the remainder" strategy.
func strassenMul(dst, a, b *Matrix) {
	m, n, p := a.nrows, a.ncols, b.ncols

	am := halfBoundary(m)
	an := halfBoundary(n)
	bp := halfBoundary(p)

	if am == 0 || an == 0 || bp == 0 {
		MulM4RMInto(dst, a, b)
		return
	}

	a11 := a.InitWindow(0, 0, am, an)
	a12 := a.InitWindow(0, an, am, 2*an)
	a21 := a.InitWindow(am, 0, 2*am, an)
	a22 := a.InitWindow(am, an, 2*am, 2*an)

	b11 := b.InitWindow(0, 0, an, bp)
	b12 := b.InitWindow(0, bp, an, 2*bp)
	b21 := b.InitWindow(an, 0, 2*an, bp)
	b22 := b.InitWindow(an, bp, 2*an, 2*bp)

	c11 := dst.InitWindow(0, 0, am, bp)
	c12 := dst.InitWindow(0, bp, am, 2*bp)
	c21 := dst.InitWindow(am, 0, 2*am, bp)
	c22 := dst.InitWindow(am, bp, 2*am, 2*bp)

	// Winograd's formulation (GF(2) arithmetic: + and - coincide with XOR).
	// Every S/P/T block is a short-lived temporary discarded once the four
	// quadrants below are written, so its storage comes from the memory
	// cache rather than a fresh allocation per recursion level.
	s1 := addMMC(a21, a22)
	s2 := addMMC(s1, a11)
	s3 := addMMC(a11, a21)
	s4 := addMMC(a12, s2)
	s5 := addMMC(b12, b11)
	s6 := addMMC(b22, s5)
	s7 := addMMC(b22, b12)
	s8 := addMMC(s6, b21)

	p1 := mulMMC(a11, b11)
	p2 := mulMMC(a12, b21)
	p3 := mulMMC(s4, b22)
	p4 := mulMMC(a22, s8)
	p5 := mulMMC(s1, s5)
	p6 := mulMMC(s2, s6)
	p7 := mulMMC(s3, s7)

	t1 := addMMC(p1, p2)
	t2 := addMMC(p1, p6)
	t3 := addMMC(t2, p7)
	t4 := addMMC(t2, p5)

	CopyRows(c11, 0, t1, 0, t1.nrows)
	CopyRows(c12, 0, t4, 0, t4.nrows)
	AddInto(c12, p3)
	CopyRows(c21, 0, t3, 0, t3.nrows)
	AddInto(c21, p4)
	CopyRows(c22, 0, t3, 0, t3.nrows)
	AddInto(c22, p5)

	for _, tmp := range []*Matrix{s1, s2, s3, s4, s5, s6, s7, s8, p1, p2, p3, p4, p5, p6, p7, t1, t2, t3, t4} {
		releaseMMCMatrix(tmp)
	}

	// The main recursion above only accounts for A's columns (and B's
	// rows) [0,2*an); fold in the inner-dimension remainder.
	if n > 2*an {
		aRest := a.InitWindow(0, 2*an, 2*am, n)
		bRest := b.InitWindow(2*an, 0, n, 2*bp)
		extra := Mul(aRest, bRest)
		mainCorner := dst.InitWindow(0, 0, 2*am, 2*bp)
		AddInto(mainCorner, extra)
	}

	if m > 2*am {
		// Row remainder: every column of C, rows [2*am,m).
		aBottom := a.InitWindow(2*am, 0, m, n)
		cBottom := dst.InitWindow(2*am, 0, m, p)
		MulM4RMInto(cBottom, aBottom, b)
	}
	if p > 2*bp {
		// Column remainder: every row of C, columns [2*bp,p).
		bRight := b.InitWindow(0, 2*bp, n, p)
		cRight := dst.InitWindow(0, 2*bp, m, p)
		MulM4RMInto(cRight, a, bRight)
	}
}
