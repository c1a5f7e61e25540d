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

import "os"

// DispatchLevel identifies the width of the wide-XOR path the row
// combiner uses for the interior of a row. It never changes the result,
// only how many words are folded together per loop iteration.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchNEON
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentWidth int // bytes processed per wide-XOR step
	currentName  string
)

// CurrentLevel returns the dispatch level chosen at process start.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the number of bytes the row combiner's wide-XOR
// step folds together at the current dispatch level.
func CurrentWidth() int { return currentWidth }

// CurrentName is a human-readable label for CurrentLevel, used by
// diagnostics and benchmark output.
func CurrentName() string { return currentName }

// NoSimdEnv reports whether the wide-XOR path has been disabled via the
// GF2_NO_SIMD environment variable. Tests and callers on strict-alignment
// targets use this to force the scalar word-at-a-time path.
func NoSimdEnv() bool {
	v := os.Getenv("GF2_NO_SIMD")
	return v != "" && v != "0"
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 8 // one word
	currentName = "scalar"
}
