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

// Package gf2 implements dense linear algebra over GF(2), the field
// {0,1} with addition as XOR and multiplication as AND.
//
// A Matrix packs one row per 64-bit word group; the Method-of-Four-Russians
// (M4RM, M4RI) inner engines, Strassen-Winograd recursion, and PLE/PLUQ
// decomposition are layered on top of a small set of word-level primitives,
// a row combiner, and a Gray-code table. Consumers reach for this package
// to compute rank, kernel, inverse, and solve systems over GF(2) at sizes
// from tens to tens of thousands of rows.
package gf2
