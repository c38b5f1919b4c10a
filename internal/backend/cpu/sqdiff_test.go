package cpu

import (
	"testing"

	"github.com/stride-ml/stride/internal/tensor"
)

func mustPlan(t *testing.T, a, b tensor.Shape) *tensor.BroadcastPlan {
	t.Helper()
	plan, err := tensor.NewBroadcastPlan(a, b)
	if err != nil {
		t.Fatal(err)
	}
	return plan
}

// TestSquaredDifference_Float32Shapes runs the float32 kernel across a set of
// shapes with the same flat data, checking rank does not affect values.
func TestSquaredDifference_Float32Shapes(t *testing.T) {
	aData := []float32{-2.0, 0.2, 0.3, 0.8, 1.1, -2.0}
	bData := []float32{1.0, 0.2, 0.6, 0.4, -1.0, -0.0}
	expected := []float32{9.0, 0.0, 0.09, 0.16, 4.41, 4.0}

	shapes := []tensor.Shape{
		{6},
		{2, 3},
		{2, 1, 3},
		{1, 3, 1, 2},
	}

	for _, shape := range shapes {
		a := newFloat32(t, shape, aData)
		b := newFloat32(t, shape, bData)

		result, err := SquaredDifference(a, b)
		if err != nil {
			t.Fatalf("shape %v: %v", shape, err)
		}
		if !result.Shape().Equal(shape) {
			t.Errorf("shape %v: result shape %v", shape, result.Shape())
		}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("shape %v: got %v, expected %v", shape, result.AsFloat32(), expected)
		}
	}
}

// TestSquaredDifference_Float32ScalarBroadcast broadcasts a scalar b over a,
// across several ranks of a.
func TestSquaredDifference_Float32ScalarBroadcast(t *testing.T) {
	aData := []float32{-0.2, 0.2, 0.5, 0.8, 0.11, 1.1}
	expected := []float32{0.09, 0.01, 0.16, 0.49, 0.0001, 1.0}

	shapes := []tensor.Shape{
		{6},
		{2, 3},
		{2, 1, 3},
		{1, 3, 1, 2},
	}

	for _, shape := range shapes {
		a := newFloat32(t, shape, aData)
		b := newFloat32(t, tensor.Shape{}, []float32{0.1})

		result, err := SquaredDifference(a, b)
		if err != nil {
			t.Fatalf("shape %v: %v", shape, err)
		}
		if !result.Shape().Equal(shape) {
			t.Errorf("shape %v: result shape %v", shape, result.Shape())
		}
		if !float32SliceEqual(result.AsFloat32(), expected) {
			t.Errorf("shape %v: got %v, expected %v", shape, result.AsFloat32(), expected)
		}
	}
}

// TestSquaredDifference_Int32 runs the int32 kernel on same-shape inputs.
func TestSquaredDifference_Int32(t *testing.T) {
	t.Run("SameShape", func(t *testing.T) {
		a := newInt32(t, tensor.Shape{1, 2, 2, 1}, []int32{-2, 2, -15, 8})
		b := newInt32(t, tensor.Shape{1, 2, 2, 1}, []int32{5, -2, -3, 5})

		result, err := SquaredDifference(a, b)
		if err != nil {
			t.Fatal(err)
		}
		expected := []int32{49, 16, 144, 9}
		if !int32SliceEqual(result.AsInt32(), expected) {
			t.Errorf("got %v, expected %v", result.AsInt32(), expected)
		}
	})

	t.Run("Rank2", func(t *testing.T) {
		a := newInt32(t, tensor.Shape{2, 3}, []int32{-20, 2, 3, 8, 11, -20})
		b := newInt32(t, tensor.Shape{2, 3}, []int32{1, 2, 6, 5, -5, -20})

		result, err := SquaredDifference(a, b)
		if err != nil {
			t.Fatal(err)
		}
		expected := []int32{441, 0, 9, 9, 256, 0}
		if !int32SliceEqual(result.AsInt32(), expected) {
			t.Errorf("got %v, expected %v", result.AsInt32(), expected)
		}
	})
}

// TestSquaredDifference_Float64Int64 covers the wider dtypes.
func TestSquaredDifference_Float64Int64(t *testing.T) {
	t.Run("Float64", func(t *testing.T) {
		a, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}
		b, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}
		copy(a.AsFloat64(), []float64{1.5, -2.0, 0.0})
		copy(b.AsFloat64(), []float64{0.5, 2.0, 3.0})

		result, err := SquaredDifference(a, b)
		if err != nil {
			t.Fatal(err)
		}
		expected := []float64{1.0, 16.0, 9.0}
		for i, v := range result.AsFloat64() {
			if v != expected[i] {
				t.Errorf("result[%d] = %v, want %v", i, v, expected[i])
			}
		}
	})

	t.Run("Int64", func(t *testing.T) {
		a, err := tensor.NewRaw(tensor.Shape{2}, tensor.Int64, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}
		b, err := tensor.NewRaw(tensor.Shape{2}, tensor.Int64, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}
		copy(a.AsInt64(), []int64{3037000500, -7}) // 3037000500^2 overflows int64
		copy(b.AsInt64(), []int64{0, 3})

		result, err := SquaredDifference(a, b)
		if err != nil {
			t.Fatal(err)
		}
		out := result.AsInt64()
		if out[0] != -9223372036709301616 {
			t.Errorf("3037000500^2 = %d, want -9223372036709301616 (wraparound)", out[0])
		}
		if out[1] != 100 {
			t.Errorf("(-7-3)^2 = %d, want 100", out[1])
		}
	})
}

// TestSquaredDifference_DTypeMismatchPanics verifies mixed dtypes are a
// programming error, not a recoverable one.
func TestSquaredDifference_DTypeMismatchPanics(t *testing.T) {
	a := newFloat32(t, tensor.Shape{2}, []float32{1, 2})
	b := newInt32(t, tensor.Shape{2}, []int32{1, 2})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on dtype mismatch")
		}
	}()
	SquaredDifference(a, b)
}

func TestSquaredDifference_NilInput(t *testing.T) {
	a := newFloat32(t, tensor.Shape{2}, []float32{1, 2})

	if _, err := SquaredDifference(a, nil); err == nil {
		t.Error("expected error for nil input")
	}
	if _, err := SquaredDifference(nil, a); err == nil {
		t.Error("expected error for nil input")
	}
}

// TestSquaredDifferenceInto exercises the caller-allocated output path.
func TestSquaredDifferenceInto(t *testing.T) {
	t.Run("ExactBuffer", func(t *testing.T) {
		a := newFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
		b := newFloat32(t, tensor.Shape{3}, []float32{1, 1, 1})
		plan := mustPlan(t, a.Shape(), b.Shape())

		out, err := tensor.NewRaw(plan.OutputShape(), tensor.Float32, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}

		SquaredDifferenceInto(plan, a, b, out)

		expected := []float32{0, 1, 4, 9, 16, 25}
		if !float32SliceEqual(out.AsFloat32(), expected) {
			t.Errorf("got %v, expected %v", out.AsFloat32(), expected)
		}
	})

	t.Run("OversizedBuffer", func(t *testing.T) {
		a := newFloat32(t, tensor.Shape{3}, []float32{1, 2, 3})
		b := newFloat32(t, tensor.Shape{3}, []float32{0, 0, 0})
		plan := mustPlan(t, a.Shape(), b.Shape())

		out, err := tensor.NewRaw(tensor.Shape{8}, tensor.Float32, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}
		trailing := out.AsFloat32()
		trailing[5] = 42 // sentinel past the written prefix

		SquaredDifferenceInto(plan, a, b, out)

		if !float32SliceEqual(out.AsFloat32()[:3], []float32{1, 4, 9}) {
			t.Errorf("prefix = %v, expected [1 4 9]", out.AsFloat32()[:3])
		}
		if out.AsFloat32()[5] != 42 {
			t.Error("Into wrote past the plan's element count")
		}
	})

	t.Run("PlanReuse", func(t *testing.T) {
		plan := mustPlan(t, tensor.Shape{2, 2}, tensor.Shape{2})
		out, err := tensor.NewRaw(plan.OutputShape(), tensor.Int32, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}

		a1 := newInt32(t, tensor.Shape{2, 2}, []int32{1, 2, 3, 4})
		b1 := newInt32(t, tensor.Shape{2}, []int32{1, 1})
		SquaredDifferenceInto(plan, a1, b1, out)
		if !int32SliceEqual(out.AsInt32(), []int32{0, 1, 4, 9}) {
			t.Errorf("first use: got %v", out.AsInt32())
		}

		a2 := newInt32(t, tensor.Shape{2, 2}, []int32{5, 5, 5, 5})
		b2 := newInt32(t, tensor.Shape{2}, []int32{2, 3})
		SquaredDifferenceInto(plan, a2, b2, out)
		if !int32SliceEqual(out.AsInt32(), []int32{9, 4, 9, 4}) {
			t.Errorf("second use: got %v", out.AsInt32())
		}
	})

	t.Run("UndersizedOutPanics", func(t *testing.T) {
		a := newFloat32(t, tensor.Shape{4}, make([]float32, 4))
		b := newFloat32(t, tensor.Shape{4}, make([]float32, 4))
		plan := mustPlan(t, a.Shape(), b.Shape())

		out, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}

		defer func() {
			if recover() == nil {
				t.Error("expected panic for undersized output")
			}
		}()
		SquaredDifferenceInto(plan, a, b, out)
	})

	t.Run("WrongPlanPanics", func(t *testing.T) {
		a := newFloat32(t, tensor.Shape{2, 3}, make([]float32, 6))
		b := newFloat32(t, tensor.Shape{3}, make([]float32, 3))
		plan := mustPlan(t, tensor.Shape{4}, tensor.Shape{4}) // built for other shapes

		out, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}

		defer func() {
			if recover() == nil {
				t.Error("expected panic for plan/input shape mismatch")
			}
		}()
		SquaredDifferenceInto(plan, a, b, out)
	})

	t.Run("OutDTypeMismatchPanics", func(t *testing.T) {
		a := newFloat32(t, tensor.Shape{3}, make([]float32, 3))
		b := newFloat32(t, tensor.Shape{3}, make([]float32, 3))
		plan := mustPlan(t, a.Shape(), b.Shape())

		out, err := tensor.NewRaw(tensor.Shape{3}, tensor.Int32, tensor.CPU)
		if err != nil {
			t.Fatal(err)
		}

		defer func() {
			if recover() == nil {
				t.Error("expected panic for output dtype mismatch")
			}
		}()
		SquaredDifferenceInto(plan, a, b, out)
	})
}

// BenchmarkSquaredDifference measures the same-shape float32 fast path.
func BenchmarkSquaredDifference(b *testing.B) {
	const n = 1 << 20
	x, _ := tensor.NewRaw(tensor.Shape{n}, tensor.Float32, tensor.CPU)
	y, _ := tensor.NewRaw(tensor.Shape{n}, tensor.Float32, tensor.CPU)
	xs, ys := x.AsFloat32(), y.AsFloat32()
	for i := range xs {
		xs[i] = float32(i)
		ys[i] = float32(i % 7)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SquaredDifference(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSquaredDifferenceBroadcast measures the strided broadcast path.
func BenchmarkSquaredDifferenceBroadcast(b *testing.B) {
	x, _ := tensor.NewRaw(tensor.Shape{1024, 1024}, tensor.Float32, tensor.CPU)
	y, _ := tensor.NewRaw(tensor.Shape{1024}, tensor.Float32, tensor.CPU)
	xs, ys := x.AsFloat32(), y.AsFloat32()
	for i := range xs {
		xs[i] = float32(i % 513)
	}
	for i := range ys {
		ys[i] = float32(i % 31)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SquaredDifference(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
