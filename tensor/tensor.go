// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor views and shape
// broadcasting in the Stride kernel library.
//
// The package defines the core types for type-safe tensor operations:
//   - Tensor[T, B]: High-level generic tensor with type safety
//   - RawTensor: Low-level tensor view for advanced use cases
//   - Backend: Interface for device-specific compute implementations
//   - Shape, BroadcastPlan, DataType, Device: Core type definitions
//
// Example:
//
//	backend := cpu.New()
//	a, _ := tensor.FromSlice([]float32{-0.2, 0.2, -1.2, 0.8}, tensor.Shape{1, 2, 2, 1}, backend)
//	b, _ := tensor.FromSlice([]float32{0.5, 0.2, -1.5, 0.5}, tensor.Shape{1, 2, 2, 1}, backend)
//	c := a.SquaredDifference(b) // [0.49, 0.0, 0.09, 0.09]
package tensor

import (
	"github.com/stride-ml/stride/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64.
type DType = tensor.DType

// DataType represents the underlying element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
// An empty Shape denotes a scalar.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation: a Shape plus a flat
// contiguous row-major buffer of a fixed element type.
type RawTensor = tensor.RawTensor

// BroadcastPlan maps flat indices of a broadcast output onto two input
// buffers. Computed once per invocation and immutable afterwards.
type BroadcastPlan = tensor.BroadcastPlan

// ShapeMismatchError reports two shapes that cannot be broadcast together,
// naming the offending axis and both conflicting sizes.
type ShapeMismatchError = tensor.ShapeMismatchError

// Tensor is a generic type-safe tensor.
//
// T is the element type (float32, float64, int32, int64).
// B is the backend implementation (CPU, WebGPU).
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Randn creates a tensor filled with random values from standard normal
// distribution N(0, 1). Only works with float element types.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Full, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
//
// This is a low-level function used to pre-allocate output buffers for the
// backend packages' *Into evaluation functions.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following
// NumPy broadcasting rules. Returns the resulting shape and a flag indicating
// whether any axis of either operand is repeated.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// NewBroadcastPlan reconciles two input shapes into an immutable broadcast
// plan, or fails with a *ShapeMismatchError. The plan exposes the output
// shape for memory planning ahead of evaluation.
func NewBroadcastPlan(a, b Shape) (*BroadcastPlan, error) {
	return tensor.NewBroadcastPlan(a, b)
}
