// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/stride-ml/stride/internal/backend/cpu"
	"github.com/stride-ml/stride/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides a pure Go implementation of the squared-difference
// kernel with a no-broadcast fast path and a parallel strided path.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/stride-ml/stride/backend/cpu"
//	    "github.com/stride-ml/stride/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// SquaredDifference computes (a-b)^2 element-wise with NumPy-style
// broadcasting, allocating the result tensor. The inputs must share an
// element type. Incompatible shapes return a wrapped
// *tensor.ShapeMismatchError.
func SquaredDifference(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return internalcpu.SquaredDifference(a, b)
}

// SquaredDifferenceInto evaluates (a-b)^2 over the broadcast index space of
// plan into the caller-allocated output tensor. This is the evaluation half
// of the shape-inference/evaluation split: build the plan with
// tensor.NewBroadcastPlan, allocate out from plan.OutputShape(), then call
// this function. Precondition violations (mismatched element types,
// undersized output) panic.
func SquaredDifferenceInto(plan *tensor.BroadcastPlan, a, b, out *tensor.RawTensor) {
	internalcpu.SquaredDifferenceInto(plan, a, b, out)
}
