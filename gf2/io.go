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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// fileMagic identifies the packed-row matrix file format: a 4-byte
// magic, a version byte, and two little-endian uint64 dimensions,
// followed by every row's bits packed MSB-first (bit 7 of the first
// byte holds column 0).
var fileMagic = [4]byte{'G', 'F', '2', 'M'}

const fileVersion = 1

// WriteTo serializes M in the packed-row file format to w.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	if _, err := bw.Write(fileMagic[:]); err != nil {
		return written, err
	}
	written += 4
	if err := bw.WriteByte(fileVersion); err != nil {
		return written, err
	}
	written++

	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[0:8], uint64(m.nrows))
	binary.LittleEndian.PutUint64(dims[8:16], uint64(m.ncols))
	if _, err := bw.Write(dims[:]); err != nil {
		return written, err
	}
	written += 16

	rowBytes := (m.ncols + 7) / 8
	buf := make([]byte, rowBytes)
	for r := 0; r < m.nrows; r++ {
		for i := range buf {
			buf[i] = 0
		}
		for c := 0; c < m.ncols; c++ {
			if m.GetBit(r, c) != 0 {
				buf[c/8] |= 1 << uint(7-c%8)
			}
		}
		n, err := bw.Write(buf)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// ReadFrom deserializes a matrix in the packed-row file format from r
// and returns it as a freshly allocated Matrix.
func ReadFrom(r io.Reader) (*Matrix, error) {
	br := bufio.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, err
	}
	if magic != fileMagic {
		return nil, fmt.Errorf("io.go: bad magic %q", magic)
	}
	version, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != fileVersion {
		return nil, fmt.Errorf("io.go: unsupported version %d", version)
	}

	var dims [16]byte
	if _, err := io.ReadFull(br, dims[:]); err != nil {
		return nil, err
	}
	nrows := int(binary.LittleEndian.Uint64(dims[0:8]))
	ncols := int(binary.LittleEndian.Uint64(dims[8:16]))

	m := NewMatrix(nrows, ncols)
	rowBytes := (ncols + 7) / 8
	buf := make([]byte, rowBytes)
	for r := 0; r < nrows; r++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, err
		}
		for c := 0; c < ncols; c++ {
			if buf[c/8]&(1<<uint(7-c%8)) != 0 {
				m.SetBit(r, c)
			}
		}
	}
	return m, nil
}

// WriteCompressed writes M to w in the packed-row format wrapped in a
// zstd stream, for callers dumping large matrices to disk where the
// packed bits still compress well (structured or sparse matrices in
// particular).
func (m *Matrix) WriteCompressed(w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := m.WriteTo(zw); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadCompressed reads a matrix written by WriteCompressed.
func ReadCompressed(r io.Reader) (*Matrix, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return ReadFrom(zr)
}
