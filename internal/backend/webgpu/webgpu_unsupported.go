//go:build !windows

// Package webgpu implements the WebGPU backend for GPU-accelerated tensor kernels.
//
// The go-webgpu native bindings currently ship for Windows only; on other
// platforms this stub keeps the package compiling and reports the backend as
// unavailable.
package webgpu

import (
	"fmt"

	"github.com/stride-ml/stride/internal/tensor"
)

// Backend is a placeholder on platforms without WebGPU support.
type Backend struct{}

// New reports that WebGPU is not supported on this platform.
func New() (*Backend, error) {
	return nil, fmt.Errorf("webgpu: not supported on this platform")
}

// IsAvailable always returns false on platforms without WebGPU support.
func IsAvailable() bool {
	return false
}

// Release is a no-op on platforms without WebGPU support.
func (b *Backend) Release() {}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Device returns the compute device.
func (b *Backend) Device() tensor.Device {
	return tensor.WebGPU
}

// SquaredDifference panics: the backend cannot be constructed on this platform.
func (b *Backend) SquaredDifference(a, other *tensor.RawTensor) *tensor.RawTensor {
	panic("webgpu: not supported on this platform")
}

// SquaredDifferenceGPU reports that WebGPU is not supported on this platform.
func (b *Backend) SquaredDifferenceGPU(a, other *tensor.RawTensor) (*tensor.RawTensor, error) {
	return nil, fmt.Errorf("webgpu: not supported on this platform")
}
