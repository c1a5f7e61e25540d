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

import "testing"

// S1: a small 2x2 multiply by hand.
func TestMulS1(t *testing.T) {
	a := NewMatrix(2, 2)
	a.SetBit(0, 0)
	a.SetBit(0, 1)
	a.SetBit(1, 1)

	got := MulNaive(a, a)
	want := NewMatrix(2, 2)
	want.SetUi(1)
	if !Equal(got, want) {
		t.Fatalf("MulNaive(A,A) = \n%s\nwant\n%s", got, want)
	}
	if !Equal(MulM4RM(a, a), want) {
		t.Fatalf("MulM4RM(A,A) != identity")
	}
	if !Equal(Mul(a, a), want) {
		t.Fatalf("Mul(A,A) != identity")
	}
}

// S2: set_ui on a non-square matrix.
func TestSetUiS2(t *testing.T) {
	m := NewMatrix(3, 5)
	m.SetUi(1)
	want := []string{"10000", "01000", "00100"}
	for i, w := range want {
		var got string
		for c := 0; c < 5; c++ {
			if m.GetBit(i, c) != 0 {
				got += "1"
			} else {
				got += "0"
			}
		}
		if got != w {
			t.Errorf("row %d = %s, want %s", i, got, w)
		}
	}
}

func TestMultiplicationConsistency(t *testing.T) {
	sizes := []struct{ m, n, k int }{
		{1, 1, 1},
		{5, 7, 3},
		{65, 65, 65},
		{130, 70, 200},
		// All three of a.nrows, a.ncols, b.ncols are >= 128 here, so
		// halfBoundary is nonzero on every axis and strassenMul
		// actually recurses through the quadrant combine instead of
		// bailing out to MulM4RMInto at the am/an/bp == 0 guard.
		{130, 130, 200},
	}
	for _, s := range sizes {
		a := NewMatrix(s.m, s.k)
		b := NewMatrix(s.k, s.n)
		RandomMatrix(a, 0.5)
		RandomMatrix(b, 0.5)

		naive := MulNaive(a, b)
		m4rm := MulM4RM(a, b)
		if !Equal(naive, m4rm) {
			t.Errorf("size %+v: naive != M4RM", s)
		}
		prev := StrassenCutoff
		StrassenCutoff = 8
		strassen := Mul(a, b)
		StrassenCutoff = prev
		if !Equal(naive, strassen) {
			t.Errorf("size %+v: naive != Strassen", s)
		}
	}
}

func TestAdditionIsXor(t *testing.T) {
	a := NewMatrix(17, 23)
	b := NewMatrix(17, 23)
	RandomMatrix(a, 0.5)
	RandomMatrix(b, 0.5)
	c := Add(a, b)
	for r := 0; r < 17; r++ {
		for col := 0; col < 23; col++ {
			want := a.GetBit(r, col) ^ b.GetBit(r, col)
			if c.GetBit(r, col) != want {
				t.Fatalf("add mismatch at (%d,%d)", r, col)
			}
		}
	}
	zero := Add(a, a)
	if !zero.IsZero() {
		t.Fatalf("add(A,A) != 0")
	}
}

func TestTransposeInvolution(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 5}, {64, 64}, {130, 70}, {200, 200}} {
		a := NewMatrix(dims[0], dims[1])
		RandomMatrix(a, 0.5)
		tt := Transpose(Transpose(a))
		if !Equal(a, tt) {
			t.Errorf("dims %v: transpose(transpose(A)) != A", dims)
		}
	}
}

func TestPLEReconstructsInput(t *testing.T) {
	for _, dims := range [][2]int{{10, 10}, {40, 25}, {25, 40}, {130, 130}} {
		a := NewMatrix(dims[0], dims[1])
		RandomMatrix(a, 0.3)
		res := PLE(a)
		recon := res.Reconstruct()
		if !Equal(a, recon) {
			t.Errorf("dims %v: PLE does not reconstruct input", dims)
		}
	}
}

func TestRankBoundAndTransposeSymmetry(t *testing.T) {
	a := NewMatrix(37, 51)
	RandomMatrix(a, 0.5)
	r := Rank(a.Copy())
	if r > minInt(37, 51) {
		t.Fatalf("rank %d exceeds min(nrows,ncols)", r)
	}
	rt := Rank(Transpose(a))
	if rt != r {
		t.Fatalf("rank(A)=%d != rank(A^T)=%d", r, rt)
	}
}

func TestEchelonIdempotence(t *testing.T) {
	a := NewMatrix(40, 40)
	RandomMatrix(a, 0.4)
	r1, _ := Echelonize(a)
	b := a.Copy()
	r2, _ := Echelonize(b)
	if r1 != r2 || !Equal(a, b) {
		t.Fatalf("echelonize is not idempotent")
	}
}

func TestInverseS6(t *testing.T) {
	for attempt := 0; attempt < 5; attempt++ {
		a := NewMatrix(64, 64)
		RandomMatrix(a, 0.5)
		inv, err := Invert(a)
		if err != nil {
			continue
		}
		left := Mul(a, inv)
		right := Mul(inv, a)
		ident := NewMatrix(64, 64)
		ident.SetUi(1)
		if !Equal(left, ident) || !Equal(right, ident) {
			t.Fatalf("A*inv(A) or inv(A)*A != I")
		}
		return
	}
	t.Skip("did not find a full-rank 64x64 matrix in 5 attempts")
}

func TestInvertSingularReturnsError(t *testing.T) {
	a := NewMatrix(10, 10)
	// row 0 all zero guarantees rank < 10.
	_, err := Invert(a)
	if err != ErrSingular {
		t.Fatalf("Invert(zero matrix) err = %v, want ErrSingular", err)
	}
}

func TestTrsmUpperLeftS5(t *testing.T) {
	n := 128
	u := NewMatrix(n, n)
	u.SetUi(1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if RandomWord()&1 == 1 {
				u.SetBit(i, j)
			}
		}
	}
	b := NewMatrix(n, 256)
	RandomMatrix(b, 0.5)
	x := b.Copy()
	TrsmUpperLeft(u, x)
	check := Mul(u, x)
	if !Equal(check, b) {
		t.Fatalf("U * trsm_upper_left(U,B) != B")
	}
}

func TestWindowAliasing(t *testing.T) {
	parent := NewMatrix(8, 8)
	w1 := parent.InitWindow(0, 0, 4, 4)
	w2 := parent.InitWindow(4, 4, 8, 8)

	w1.SetBit(1, 1)
	if parent.GetBit(1, 1) == 0 {
		t.Fatalf("write through window w1 did not reflect in parent")
	}
	if w2.GetBit(0, 0) != 0 {
		t.Fatalf("disjoint window w2 sees w1's write")
	}
}

func TestMaskHygiene(t *testing.T) {
	m := NewMatrix(3, 10)
	// Seed excess bits with garbage directly in the backing store.
	for i := range m.data {
		m.data[i] = allOnes &^ m.firstWordMask()
	}
	m.maskExcess()
	zeroed := NewMatrix(3, 10)
	if !Equal(m, zeroed) {
		t.Fatalf("garbage excess bits leaked into valid bit range after maskExcess")
	}
	for i, w := range m.data {
		if w != 0 {
			t.Fatalf("maskExcess left excess bits set in word %d: %x", i, w)
		}
	}
}

func TestKernelRightAndLeft(t *testing.T) {
	a := NewMatrix(5, 8)
	RandomMatrix(a, 0.4)
	k := KernelRight(a)
	for row := 0; row < k.NRows(); row++ {
		vec := NewMatrix(a.ncols, 1)
		for c := 0; c < a.ncols; c++ {
			if k.GetBit(row, c) != 0 {
				vec.SetBit(c, 0)
			}
		}
		prod := Mul(a, vec)
		if !prod.IsZero() {
			t.Fatalf("KernelRight basis vector %d not in null space", row)
		}
	}

	lk := KernelLeft(a)
	for row := 0; row < lk.NRows(); row++ {
		vec := NewMatrix(1, a.nrows)
		for c := 0; c < a.nrows; c++ {
			if lk.GetBit(row, c) != 0 {
				vec.SetBit(0, c)
			}
		}
		prod := Mul(vec, a)
		if !prod.IsZero() {
			t.Fatalf("KernelLeft basis vector %d not in left null space", row)
		}
	}
}

func TestSolveLeftS4Style(t *testing.T) {
	a := NewMatrix(65, 65)
	var inv *Matrix
	var err error
	for attempt := 0; attempt < 8; attempt++ {
		RandomMatrix(a, 0.5)
		inv, err = Invert(a)
		if err == nil {
			break
		}
	}
	if err != nil {
		t.Skip("did not find full-rank matrix")
	}
	b := NewMatrix(65, 10)
	RandomMatrix(b, 0.5)
	x, err := SolveLeft(a, b)
	if err != nil {
		t.Fatalf("SolveLeft: %v", err)
	}
	check := Mul(a, x)
	if !Equal(check, b) {
		t.Fatalf("A*SolveLeft(A,B) != B")
	}
	_ = inv
}
