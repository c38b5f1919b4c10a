// Copyright 2025 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated evaluation
// of the Stride tensor kernels.
//
// The go-webgpu bindings are zero-CGO and currently ship native libraries for
// Windows; on other platforms New returns an error and IsAvailable reports
// false, so callers can fall back to the CPU backend:
//
//	var backend tensor.Backend
//	if webgpu.IsAvailable() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//	    backend = gpu
//	} else {
//	    backend = cpu.New()
//	}
//
// The GPU path covers float32 and int32 inputs of identical shapes; shapes
// that need broadcasting are evaluated on the CPU backend.
package webgpu

import (
	internalwebgpu "github.com/stride-ml/stride/internal/backend/webgpu"
	"github.com/stride-ml/stride/tensor"
)

// Backend represents the WebGPU backend implementation for GPU-accelerated
// tensor kernels.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend ready
// for tensor operations. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g. no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It attempts to initialize a WebGPU adapter to verify that a compatible GPU
// and drivers are present. Useful for graceful fallback to the CPU backend.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
