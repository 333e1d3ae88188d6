// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides shape-tagged dense tensors over Ember's scalar
// autodiff nodes.
//
// # Overview
//
// A Tensor is flat row-major storage of differentiable scalars plus a
// Shape. This package provides:
//   - Element-wise Add, Mul and Tanh (gradient-preserving, exact shape
//     match required, no broadcasting)
//   - View for in-place reshaping over the same storage
//   - Sum and a 2-D MatMul primitive
//   - A nested-bracket String rendering for diagnostics
//
// # Basic Usage
//
//	a, _ := tensor.FromFloats([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b, _ := tensor.Full(0.5, tensor.Shape{2, 3})
//
//	c, err := a.Add(b)      // element-wise, gradient-preserving
//	p, err := a.MatMul(bT)  // 2-D product over raw values
//
// # Differentiability
//
// Element-wise operations build scalar graph nodes, so gradients flow
// through them. Sum and MatMul are the documented exception: they compute
// over raw float values and return fresh detached leaves, so no gradient
// flows back through a reduction or a matrix product. Training graphs are
// built from the element-wise ops and the nn package.
//
// # Error Handling
//
// Shape-level failures (view with a mismatched element count, element-wise
// ops on unequal shapes, matmul with incompatible dimensions, backward on
// a non-scalar tensor) return errors and leave the inputs untouched.
// Out-of-range indexing is a programmer error and panics.
package tensor
