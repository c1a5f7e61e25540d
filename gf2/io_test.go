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

import (
	"bytes"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	m := NewMatrix(13, 77)
	RandomMatrix(m, 0.5)

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	got, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if !Equal(m, got) {
		t.Fatalf("round trip mismatch")
	}
}

func TestCompressedFileRoundTrip(t *testing.T) {
	m := NewMatrix(40, 200)
	RandomMatrix(m, 0.05)

	var buf bytes.Buffer
	if err := m.WriteCompressed(&buf); err != nil {
		t.Fatalf("WriteCompressed: %v", err)
	}
	got, err := ReadCompressed(&buf)
	if err != nil {
		t.Fatalf("ReadCompressed: %v", err)
	}
	if !Equal(m, got) {
		t.Fatalf("compressed round trip mismatch")
	}
}

func TestFileRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("XXXX\x01")
	buf.Write(make([]byte, 16))
	if _, err := ReadFrom(buf); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}
