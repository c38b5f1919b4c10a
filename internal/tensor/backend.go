package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: Pure Go with an optional parallel strided path
//   - WebGPU: Zero-CGO GPU compute (Windows)
//
// Backend methods panic on shape mismatch; callers that need a recoverable
// error use the error-returning functions of the backend packages directly.
type Backend interface {
	// SquaredDifference computes (a-b)^2 element-wise with NumPy-style
	// broadcasting of the two input shapes.
	SquaredDifference(a, b *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
