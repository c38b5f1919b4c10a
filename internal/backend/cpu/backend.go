// Package cpu implements the pure Go CPU backend for Stride tensor kernels.
package cpu

import (
	"fmt"

	"github.com/stride-ml/stride/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// SquaredDifference computes (a-b)^2 element-wise with NumPy-style broadcasting.
// Panics on incompatible shapes; use the package-level SquaredDifference for a
// recoverable error.
func (cpu *CPUBackend) SquaredDifference(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, err := SquaredDifference(a, b)
	if err != nil {
		panic(fmt.Sprintf("squared difference: %v", err))
	}
	return result
}
