// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor views and NumPy-style shape
// broadcasting for the Stride kernel library.
//
// # Overview
//
// Stride is a small tensor-kernel library built around one broadcasting
// element-wise operation: the squared difference (a-b)^2. This package
// provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting (BroadcastShapes, BroadcastPlan)
//   - Zero-copy typed views over flat buffers
//   - Device abstraction (CPU, WebGPU)
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
//	    a, _ := tensor.FromSlice([]int32{-20, 10, 7, 3, 1, 13}, tensor.Shape{6}, backend)
//	    c, _ := tensor.FromSlice([]int32{3}, tensor.Shape{}, backend)
//
//	    d := a.SquaredDifference(c) // [529, 49, 16, 0, 4, 100]
//	}
//
// # Broadcasting
//
// Shapes are aligned at their trailing dimensions; a size-1 or absent
// dimension is repeated to match the other operand:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend)     // (3, 1)
//	b := tensor.Zeros[float32](tensor.Shape{3, 4}, backend)     // (3, 4)
//	c := a.SquaredDifference(b)                                  // (3, 4)
//
// Incompatible shapes (e.g. (2, 3) vs (2, 4)) fail with a
// *ShapeMismatchError naming the axis and both sizes.
//
// # Shape inference vs evaluation
//
// The two steps are separately callable so a runtime can plan memory before
// computing: NewBroadcastPlan performs shape inference only, and the backend
// packages expose *Into functions that evaluate into a caller-allocated
// output buffer.
//
// # Supported Element Types
//
// The DType constraint covers float32, float64 (IEEE arithmetic, NaN/Inf
// propagate) and int32, int64 (two's-complement wraparound on overflow).
package tensor
