package cpu

import (
	"fmt"

	"github.com/stride-ml/stride/internal/parallel"
	"github.com/stride-ml/stride/internal/tensor"
)

// parCfg partitions large outputs across goroutines. Output chunks are
// disjoint and inputs are read-only, so no locking is needed.
var parCfg = parallel.DefaultConfig()

// SquaredDifference computes (a-b)^2 element-wise with NumPy-style
// broadcasting and returns a freshly allocated result tensor.
//
// The two inputs must share an element type; passing mismatched dtypes is a
// caller bug and panics. Incompatible shapes return a recoverable error
// (a wrapped *tensor.ShapeMismatchError).
//
// Shape inference and evaluation are separately callable: callers that plan
// memory ahead of time build a tensor.BroadcastPlan themselves, allocate the
// output, and invoke SquaredDifferenceInto.
func SquaredDifference(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("SquaredDifference: input tensor is nil")
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("SquaredDifference: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	plan, err := tensor.NewBroadcastPlan(a.Shape(), b.Shape())
	if err != nil {
		return nil, fmt.Errorf("SquaredDifference: %w", err)
	}

	result, err := tensor.NewRaw(plan.OutputShape(), a.DType(), tensor.CPU)
	if err != nil {
		return nil, fmt.Errorf("SquaredDifference: %w", err)
	}

	SquaredDifferenceInto(plan, a, b, result)
	return result, nil
}

// SquaredDifferenceInto evaluates (a-b)^2 over the broadcast index space of
// plan and writes the results into out. The plan must have been built from
// a.Shape() and b.Shape(); out is caller-allocated and must hold at least
// plan.NumElements() elements of the inputs' element type.
//
// Inputs are never mutated and out is the only write target. Precondition
// violations (dtype mismatch, undersized output) are caller bugs and panic;
// once a valid plan exists, evaluation itself cannot fail.
func SquaredDifferenceInto(plan *tensor.BroadcastPlan, a, b, out *tensor.RawTensor) {
	squaredDifferenceInto(plan, a, b, out, parCfg)
}

func squaredDifferenceInto(plan *tensor.BroadcastPlan, a, b, out *tensor.RawTensor, cfg parallel.Config) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("SquaredDifferenceInto: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}
	if out.DType() != a.DType() {
		panic(fmt.Sprintf("SquaredDifferenceInto: output dtype %s does not match input dtype %s", out.DType(), a.DType()))
	}
	aShape, bShape := plan.InputShapes()
	if !aShape.Equal(a.Shape()) || !bShape.Equal(b.Shape()) {
		panic(fmt.Sprintf("SquaredDifferenceInto: plan built for shapes %v, %v but inputs have %v, %v",
			aShape, bShape, a.Shape(), b.Shape()))
	}
	n := plan.NumElements()
	if out.NumElements() < n {
		panic(fmt.Sprintf("SquaredDifferenceInto: output holds %d elements, need %d", out.NumElements(), n))
	}

	switch a.DType() {
	case tensor.Float32:
		sqdiffFloat32(out.AsFloat32()[:n], a.AsFloat32(), b.AsFloat32(), plan, cfg)
	case tensor.Float64:
		sqdiffFloat64(out.AsFloat64()[:n], a.AsFloat64(), b.AsFloat64(), plan, cfg)
	case tensor.Int32:
		sqdiffInt32(out.AsInt32()[:n], a.AsInt32(), b.AsInt32(), plan, cfg)
	case tensor.Int64:
		sqdiffInt64(out.AsInt64()[:n], a.AsInt64(), b.AsInt64(), plan, cfg)
	default:
		panic(fmt.Sprintf("SquaredDifferenceInto: unsupported dtype %s", a.DType()))
	}
}
