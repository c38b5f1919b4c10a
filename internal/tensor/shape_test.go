package tensor

import (
	"errors"
	"testing"
)

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1}, // scalar
		{nil, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{1, 2, 2, 1}, 4},
		{Shape{2, 0, 3}, 0}, // empty tensor
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate({2,3}) = %v, want nil", err)
	}
	if err := (Shape{2, 0}).Validate(); err != nil {
		t.Errorf("Validate({2,0}) = %v, want nil (zero-size dims are legal)", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("Validate({2,-1}) = nil, want error")
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("Equal({2,3}, {2,3}) = false, want true")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("Equal({2,3}, {3,2}) = true, want false")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("Equal({2,3}, {2,3,1}) = true, want false")
	}
	if !(Shape{}).Equal(nil) {
		t.Error("Equal({}, nil) = false, want true")
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 99
	if s[0] != 2 {
		t.Error("Clone should not share storage with the original")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{4}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{1, 2, 2, 1}, []int{4, 2, 1, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.want) {
			t.Errorf("ComputeStrides(%v) = %v, want %v", tt.shape, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ComputeStrides(%v) = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

// Broadcasting Tests

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b       Shape
		want       Shape
		needsBcast bool
	}{
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true},
		{Shape{3, 1}, Shape{4}, Shape{3, 4}, true},
		{Shape{6}, Shape{}, Shape{6}, true},
		{Shape{}, Shape{}, Shape{}, false},
		{Shape{1, 3}, Shape{3}, Shape{1, 3}, false}, // rank differs, no repetition
		{Shape{2, 1, 3}, Shape{2, 1, 3}, Shape{2, 1, 3}, false},
	}

	for _, tt := range tests {
		got, needs, err := BroadcastShapes(tt.a, tt.b)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) error: %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if needs != tt.needsBcast {
			t.Errorf("BroadcastShapes(%v, %v) needsBroadcast = %v, want %v", tt.a, tt.b, needs, tt.needsBcast)
		}
	}
}

func TestBroadcastShapesMismatch(t *testing.T) {
	_, _, err := BroadcastShapes(Shape{2, 3}, Shape{2, 4})
	if err == nil {
		t.Fatal("BroadcastShapes({2,3}, {2,4}) should fail")
	}

	var mismatch *ShapeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error %T should be a *ShapeMismatchError", err)
	}
	if mismatch.Axis != 1 {
		t.Errorf("Axis = %d, want 1", mismatch.Axis)
	}
	if mismatch.DimA != 3 || mismatch.DimB != 4 {
		t.Errorf("conflicting sizes = %d vs %d, want 3 vs 4", mismatch.DimA, mismatch.DimB)
	}
}

func TestBroadcastShapesMismatchLeadingAxis(t *testing.T) {
	_, _, err := BroadcastShapes(Shape{2, 3}, Shape{5, 3})
	if err == nil {
		t.Fatal("BroadcastShapes({2,3}, {5,3}) should fail")
	}

	var mismatch *ShapeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error %T should be a *ShapeMismatchError", err)
	}
	if mismatch.Axis != 0 {
		t.Errorf("Axis = %d, want 0", mismatch.Axis)
	}
}
