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

// Permutation represents a permutation of {0,...,n-1} as a sequence of
// transpositions: Values[i] holds the index that position i is swapped
// with at step i of the forward pass. This mirrors the original
// library's mzp_t, which stores the same transposition trace rather
// than a direct image array, since that is exactly the form PLE
// decomposition produces and ApplyLeft/ApplyRight consume.
type Permutation struct {
	Values []int
}

// NewPermutation returns the identity permutation on n elements.
func NewPermutation(n int) *Permutation {
	p := &Permutation{Values: make([]int, n)}
	for i := range p.Values {
		p.Values[i] = i
	}
	return p
}

// Copy returns an independent copy of p.
func (p *Permutation) Copy() *Permutation {
	v := make([]int, len(p.Values))
	copy(v, p.Values)
	return &Permutation{Values: v}
}

// SetIdentity resets p to the identity permutation.
func (p *Permutation) SetIdentity() {
	for i := range p.Values {
		p.Values[i] = i
	}
}

// ApplyRowsLeft applies P to the rows of M in place: for i from 0 to
// len(Values)-1, row i is swapped with row Values[i]. This is the order
// in which PLE decomposition performs its row swaps; Reconstruct undoes
// them with ApplyRowsLeftTrans.
func ApplyRowsLeft(m *Matrix, p *Permutation) {
	for i, v := range p.Values {
		if v != i {
			RowSwap(m, i, v)
		}
	}
}

// ApplyRowsLeftTrans applies the inverse of P to the rows of M in
// place by replaying the transposition trace in reverse.
func ApplyRowsLeftTrans(m *Matrix, p *Permutation) {
	for i := len(p.Values) - 1; i >= 0; i-- {
		v := p.Values[i]
		if v != i {
			RowSwap(m, i, v)
		}
	}
}

// ApplyColsRight applies P to the columns of M in place: for i from 0
// to len(Values)-1, column i is swapped with column Values[i].
func ApplyColsRight(m *Matrix, p *Permutation) {
	for i, v := range p.Values {
		if v != i {
			ColSwap(m, i, v)
		}
	}
}

// ApplyColsRightTrans applies the inverse of P to the columns of M in
// place by replaying the transposition trace in reverse.
func ApplyColsRightTrans(m *Matrix, p *Permutation) {
	for i := len(p.Values) - 1; i >= 0; i-- {
		v := p.Values[i]
		if v != i {
			ColSwap(m, i, v)
		}
	}
}

// Compose returns the permutation of two stacked blocks of rows: p acts
// on the first len(p.Values) positions and q, shifted down by
// len(p.Values), on the positions after them, as a fresh transposition
// trace of the combined length.
func Compose(p, q *Permutation) *Permutation {
	n := len(p.Values) + len(q.Values)
	values := make([]int, n)
	copy(values, p.Values)
	for i, v := range q.Values {
		values[len(p.Values)+i] = len(p.Values) + v
	}
	return &Permutation{Values: values}
}
