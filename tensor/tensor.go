// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/ember-ml/ember/internal/scalar"
	"github.com/ember-ml/ember/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2×3 matrix.
type Shape = tensor.Shape

// Tensor is dense row-major storage of scalar graph nodes with a shape tag.
type Tensor = tensor.Tensor

// New creates a 1-D tensor wrapping the given scalar nodes.
func New(values []*scalar.Scalar) *Tensor {
	return tensor.New(values)
}

// Full creates a tensor of the given shape with every cell holding its own
// fresh leaf node initialized to value.
//
// Example:
//
//	ones, err := tensor.Full(1.0, tensor.Shape{2, 3})
func Full(value float64, shape Shape) (*Tensor, error) {
	return tensor.Full(value, shape)
}

// FromFloats creates a tensor of the given shape, boxing each float as a
// fresh leaf node.
//
// Example:
//
//	m, err := tensor.FromFloats([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromFloats(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromFloats(data, shape)
}
