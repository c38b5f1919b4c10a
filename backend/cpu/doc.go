// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the Stride tensor kernels.
//
// # Overview
//
// This package implements the squared-difference kernel with:
//   - Pure Go implementation (no CGO)
//   - Float32, Float64, Int32 and Int64 support
//   - NumPy-compatible broadcasting
//   - Parallel partitioning of large outputs across goroutines
//
// # Basic Usage
//
//	import (
//	    "github.com/stride-ml/stride/backend/cpu"
//	    "github.com/stride-ml/stride/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.FromSlice([]float32{-0.2, 0.2, -1.2, 0.8}, tensor.Shape{1, 2, 2, 1}, backend)
//	    b, _ := tensor.FromSlice([]float32{0.5, 0.2, -1.5, 0.5}, tensor.Shape{1, 2, 2, 1}, backend)
//	    c := a.SquaredDifference(b)
//	}
//
// # Planned evaluation
//
// Runtimes that plan memory ahead of execution use the two-step form:
//
//	plan, err := tensor.NewBroadcastPlan(a.Shape(), b.Shape())
//	if err != nil { ... }                                   // shape inference
//	out, _ := tensor.NewRaw(plan.OutputShape(), a.DType(), tensor.CPU)
//	cpu.SquaredDifferenceInto(plan, a, b, out)              // evaluation
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each invocation is a pure
// function of its inputs; parallel workers write disjoint output ranges and
// never mutate the inputs.
package cpu
