package tensor_test

import (
	"testing"

	"github.com/ember-ml/ember/internal/tensor"
)

// TestShape_NumElements tests element counting, including the scalar case.
func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		shape tensor.Shape
		want  int
	}{
		{tensor.Shape{}, 1},
		{tensor.Shape{4}, 4},
		{tensor.Shape{2, 3}, 6},
		{tensor.Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

// TestShape_Validate tests rejection of non-positive dimensions.
func TestShape_Validate(t *testing.T) {
	if err := (tensor.Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate({2,3}) = %v, want nil", err)
	}
	if err := (tensor.Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate({2,0}) = nil, want error")
	}
	if err := (tensor.Shape{-1}).Validate(); err == nil {
		t.Error("Validate({-1}) = nil, want error")
	}
}

// TestShape_Equal tests shape equality.
func TestShape_Equal(t *testing.T) {
	if !(tensor.Shape{2, 3}).Equal(tensor.Shape{2, 3}) {
		t.Error("{2,3} should equal {2,3}")
	}
	if (tensor.Shape{2, 3}).Equal(tensor.Shape{3, 2}) {
		t.Error("{2,3} should not equal {3,2}")
	}
	if (tensor.Shape{6}).Equal(tensor.Shape{2, 3}) {
		t.Error("{6} should not equal {2,3}")
	}
}

// TestShape_ComputeStrides tests row-major stride computation.
func TestShape_ComputeStrides(t *testing.T) {
	strides := (tensor.Shape{2, 3, 4}).ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("ComputeStrides({2,3,4})[%d] = %d, want %d", i, strides[i], want[i])
		}
	}
}

// TestShape_Clone tests that Clone is an independent copy.
func TestShape_Clone(t *testing.T) {
	s := tensor.Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Error("mutating a clone must not touch the original")
	}
}
