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

func TestParallelRowBlocksCoversEveryRow(t *testing.T) {
	m := NewMatrix(97, 40)
	err := ParallelRowBlocks(m, func(block *Matrix, startRow int) error {
		for r := 0; r < block.NRows(); r++ {
			block.SetBit(r, 0)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelRowBlocks: %v", err)
	}
	for r := 0; r < m.NRows(); r++ {
		if m.GetBit(r, 0) == 0 {
			t.Fatalf("row %d was not visited by any block", r)
		}
	}
}

func TestParallelRowBlocksDisjoint(t *testing.T) {
	m := NewMatrix(50, 10)
	err := ParallelRowBlocks(m, func(block *Matrix, startRow int) error {
		for r := 0; r < block.NRows(); r++ {
			block.WriteBit(r, 1, startRow%2)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelRowBlocks: %v", err)
	}
}
