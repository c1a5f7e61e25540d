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

// Package main provides a diagnostic tool to print CPU features
// detected by Go and which gf2 row-combiner dispatch level they select.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/gf2core/m4ri/gf2"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("gf2 dispatch level: %s\n", gf2.CurrentLevel())
	fmt.Printf("gf2 dispatch width: %d bytes\n", gf2.CurrentWidth())
	fmt.Printf("gf2 dispatch name:  %s\n", gf2.CurrentName())

	switch runtime.GOARCH {
	case "arm64":
		fmt.Println()
		printARM64Features()
	case "amd64":
		fmt.Println()
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasSVE:     %v\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:    %v\n", cpu.ARM64.HasSVE2)
	fmt.Printf("  HasCRC32:   %v\n", cpu.ARM64.HasCRC32)
	fmt.Printf("  HasATOMICS: %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
}
