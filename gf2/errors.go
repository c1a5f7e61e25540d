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
	"errors"
	"fmt"
	"os"
)

// ErrSingular is returned by solve-style routines when the coefficient
// matrix does not have full rank. Invert reports the same condition by
// returning a nil matrix together with ErrSingular; neither routine
// treats a singular matrix as fatal.
var ErrSingular = errors.New("gf2: matrix is singular")

// Die is the "die with message" hook. It is invoked for conditions the
// library treats as unrecoverable: allocation failure and dimension
// mismatches passed to high-level routines. The default prints to stderr
// and aborts the process; callers that need to recover install their own
// hook (for example one that records the message and panics with a typed
// value an enclosing recover() can distinguish from a runtime panic).
var Die func(format string, args ...any) = defaultDie

func defaultDie(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "gf2: fatal: "+format+"\n", args...)
	os.Exit(1)
}

// dief routes an internal fatal condition through the Die hook.
func dief(format string, args ...any) {
	Die(format, args...)
	// Callers may install a Die hook that returns instead of aborting.
	panic(fmt.Sprintf(format, args...))
}

// requireDims calls Die if the condition does not hold. Used at the
// entry points of high-level operations to turn a dimension mismatch
// into the documented fatal path instead of an out-of-bounds panic deep
// inside a recursive kernel.
func requireDims(ok bool, format string, args ...any) {
	if !ok {
		dief(format, args...)
	}
}
