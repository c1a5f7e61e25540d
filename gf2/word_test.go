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

func TestGetSetClrWriteFlipBit(t *testing.T) {
	var w word
	w = setBit(w, 3)
	if getBit(w, 3) != 1 {
		t.Fatalf("setBit/getBit mismatch")
	}
	w = clrBit(w, 3)
	if getBit(w, 3) != 0 {
		t.Fatalf("clrBit did not clear")
	}
	w = writeBit(w, 5, 1)
	if getBit(w, 5) != 1 {
		t.Fatalf("writeBit(1) did not set")
	}
	w = writeBit(w, 5, 0)
	if getBit(w, 5) != 0 {
		t.Fatalf("writeBit(0) did not clear")
	}
	w = flipBit(w, 10)
	if getBit(w, 10) != 1 {
		t.Fatalf("flipBit did not set from 0")
	}
	w = flipBit(w, 10)
	if getBit(w, 10) != 0 {
		t.Fatalf("flipBit did not clear from 1")
	}
}

func TestMasks(t *testing.T) {
	if leftMask(64) != allOnes {
		t.Errorf("leftMask(64) = %x, want all ones", leftMask(64))
	}
	if leftMask(1) != 1 {
		t.Errorf("leftMask(1) = %x, want 1", leftMask(1))
	}
	if rightMask(1) != (word(1) << 63) {
		t.Errorf("rightMask(1) = %x, want high bit set", rightMask(1))
	}
	mm := middleMask(4, 2)
	want := word(0b111100)
	if mm != want {
		t.Errorf("middleMask(4,2) = %b, want %b", mm, want)
	}
}
