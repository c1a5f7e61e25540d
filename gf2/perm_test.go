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

func TestApplyRowsLeftAndTrans(t *testing.T) {
	m := NewMatrix(6, 9)
	RandomMatrix(m, 0.5)
	orig := m.Copy()

	p := NewPermutation(6)
	p.Values = []int{2, 1, 2, 5, 4, 5}

	ApplyRowsLeft(m, p)
	if Equal(m, orig) {
		t.Fatalf("ApplyRowsLeft was a no-op on a non-identity trace")
	}
	ApplyRowsLeftTrans(m, p)
	if !Equal(m, orig) {
		t.Fatalf("ApplyRowsLeftTrans did not undo ApplyRowsLeft")
	}
}

func TestApplyColsRightAndTrans(t *testing.T) {
	m := NewMatrix(5, 12)
	RandomMatrix(m, 0.5)
	orig := m.Copy()

	q := NewPermutation(12)
	q.Values = []int{3, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	ApplyColsRight(m, q)
	ApplyColsRightTrans(m, q)
	if !Equal(m, orig) {
		t.Fatalf("ApplyColsRightTrans did not undo ApplyColsRight")
	}
}
