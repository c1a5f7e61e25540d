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
	"testing"
	"time"
)

// runMulBenchmark multiplies a random m x k matrix by a random k x n
// matrix at the given density and Strassen cutoff, reporting wall time
// and (when full is true) the rank of the result -- the shape expected
// of any m4ribench-style driver routine.
func runMulBenchmark(b *testing.B, m, n, k, cutoff int, density float64, full bool) {
	prevCutoff := StrassenCutoff
	StrassenCutoff = cutoff
	defer func() { StrassenCutoff = prevCutoff }()

	a := NewMatrix(m, k)
	bm := NewMatrix(k, n)
	RandomMatrix(a, density)
	RandomMatrix(bm, density)

	b.ResetTimer()
	start := time.Now()
	var c *Matrix
	for i := 0; i < b.N; i++ {
		c = Mul(a, bm)
	}
	elapsed := time.Since(start)

	rank := -1
	if full {
		rank = Rank(c.Copy())
	}
	b.ReportMetric(float64(elapsed.Nanoseconds())/float64(b.N), "ns/mul")
	b.Logf("m=%d n=%d k=%d cutoff=%d density=%.3f rank=%d elapsed=%s", m, n, k, cutoff, density, rank, elapsed)
}

func BenchmarkMulSmallDense(b *testing.B) {
	runMulBenchmark(b, 256, 256, 256, StrassenCutoff, 0.5, true)
}

func BenchmarkMulLargeSparse(b *testing.B) {
	runMulBenchmark(b, 1024, 1024, 1024, 512, 0.1, false)
}

func BenchmarkMulRectangular(b *testing.B) {
	runMulBenchmark(b, 2000, 500, 1500, 256, 0.5, false)
}
