package tensor

import "fmt"

// ShapeMismatchError reports two shapes that cannot be broadcast together.
// Axis is the offending output dimension (counted from the leading axis after
// trailing alignment); DimA and DimB are the conflicting sizes.
type ShapeMismatchError struct {
	A, B Shape
	Axis int
	DimA int
	DimB int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
		e.A, e.B, e.Axis, e.DimA, e.DimB)
}

// BroadcastPlan maps flat indices of a broadcast output onto two input buffers.
// A plan is computed once per invocation from the two input shapes and is
// immutable afterwards.
//
// The per-input strides carry 0 on every axis where that input is logically
// repeated (size 1 or absent at the aligned position), so an output coordinate
// on a repeated axis never advances the input's flat index.
type BroadcastPlan struct {
	out        Shape
	outStrides []int
	aShape     Shape
	bShape     Shape
	aStrides   []int
	bStrides   []int
	identity   bool
}

// NewBroadcastPlan reconciles two input shapes into a broadcast plan.
// Returns a *ShapeMismatchError when the shapes cannot be broadcast.
func NewBroadcastPlan(a, b Shape) (*BroadcastPlan, error) {
	out, needsBroadcast, err := BroadcastShapes(a, b)
	if err != nil {
		return nil, err
	}

	return &BroadcastPlan{
		out:        out,
		outStrides: out.ComputeStrides(),
		aShape:     a.Clone(),
		bShape:     b.Clone(),
		aStrides:   broadcastStrides(a, out),
		bStrides:   broadcastStrides(b, out),
		// Without repetition the output index space coincides with both
		// input index spaces, even when the ranks differ (e.g. (1,3) vs (3)).
		identity: !needsBroadcast,
	}, nil
}

// OutputShape returns the broadcast output shape.
// Rank = max(rank(a), rank(b)); each axis is the max of the aligned sizes.
func (p *BroadcastPlan) OutputShape() Shape {
	return p.out
}

// NumElements returns the total element count of the output.
func (p *BroadcastPlan) NumElements() int {
	return p.out.NumElements()
}

// InputShapes returns the two input shapes the plan was built from.
func (p *BroadcastPlan) InputShapes() (Shape, Shape) {
	return p.aShape, p.bShape
}

// Identity reports whether the mapping is the identity on flat indices,
// i.e. no axis of either input is repeated. Callers use this to select a
// linear fast path.
func (p *BroadcastPlan) Identity() bool {
	return p.identity
}

// Repeated reports whether the given input (0 or 1) is logically repeated
// along the given output axis: its aligned size there is 1 (or absent) while
// the output size is greater than 1. Repetition costs no extra storage; the
// input's stride along that axis is 0.
func (p *BroadcastPlan) Repeated(input, axis int) bool {
	if axis < 0 || axis >= len(p.out) {
		panic(fmt.Sprintf("broadcast plan: axis %d out of range for rank %d", axis, len(p.out)))
	}
	var shape Shape
	switch input {
	case 0:
		shape = p.aShape
	case 1:
		shape = p.bShape
	default:
		panic(fmt.Sprintf("broadcast plan: input must be 0 or 1, got %d", input))
	}
	// Decided by the aligned size, not the stride: a zero-size axis also has
	// stride 0 but is not repeated.
	inIdx := axis - (len(p.out) - len(shape))
	size := 1
	if inIdx >= 0 {
		size = shape[inIdx]
	}
	return size == 1 && p.out[axis] > 1
}

// SourceIndices maps an output flat index to the flat indices into the two
// input buffers. The output index is decomposed into per-axis coordinates
// using the output's row-major strides; repeated axes contribute nothing to
// an input's index because their stride is 0.
//
// For rank-0 (scalar) inputs the result is always 0.
func (p *BroadcastPlan) SourceIndices(i int) (int, int) {
	ia, ib := 0, 0
	for d := 0; d < len(p.outStrides); d++ {
		coord := i / p.outStrides[d]
		i %= p.outStrides[d]
		ia += coord * p.aStrides[d]
		ib += coord * p.bStrides[d]
	}
	return ia, ib
}

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Axes where the input is padded or has size 1 get stride 0.
func broadcastStrides(inShape, outShape Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	// Pad input shape with 1s on the left
	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			// Padded dimension, stride is 0
			strides[i] = 0
		case inShape[inIdx] == 1:
			// Broadcast dimension, stride is 0
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}
