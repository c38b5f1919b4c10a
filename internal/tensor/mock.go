package tensor

import "fmt"

// MockBackend is a minimal reference backend used by tests in this package.
// It evaluates the squared difference with a naive per-element loop and no
// fast paths, so kernel implementations can be checked against it.
type MockBackend struct{}

// NewMockBackend creates a new mock backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "Mock"
}

// Device returns the compute device.
func (m *MockBackend) Device() Device {
	return CPU
}

// SquaredDifference computes (a-b)^2 element-wise with broadcasting.
func (m *MockBackend) SquaredDifference(a, b *RawTensor) *RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("mock: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	plan, err := NewBroadcastPlan(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("mock: %v", err))
	}

	result, err := NewRaw(plan.OutputShape(), a.DType(), CPU)
	if err != nil {
		panic(fmt.Sprintf("mock: %v", err))
	}

	n := plan.NumElements()
	switch a.DType() {
	case Float32:
		as, bs, dst := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
		for i := 0; i < n; i++ {
			ia, ib := plan.SourceIndices(i)
			d := as[ia] - bs[ib]
			dst[i] = d * d
		}
	case Float64:
		as, bs, dst := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
		for i := 0; i < n; i++ {
			ia, ib := plan.SourceIndices(i)
			d := as[ia] - bs[ib]
			dst[i] = d * d
		}
	case Int32:
		as, bs, dst := a.AsInt32(), b.AsInt32(), result.AsInt32()
		for i := 0; i < n; i++ {
			ia, ib := plan.SourceIndices(i)
			d := as[ia] - bs[ib]
			dst[i] = d * d
		}
	case Int64:
		as, bs, dst := a.AsInt64(), b.AsInt64(), result.AsInt64()
		for i := 0; i < n; i++ {
			ia, ib := plan.SourceIndices(i)
			d := as[ia] - bs[ib]
			dst[i] = d * d
		}
	default:
		panic(fmt.Sprintf("mock: unsupported dtype %s", a.DType()))
	}

	return result
}
