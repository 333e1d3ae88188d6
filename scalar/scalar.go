// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the public API for Ember's reverse-mode
// automatic differentiation engine.
//
// A Scalar is a single differentiable value. Combining Scalars with Add,
// Mul, Pow, Tanh and the helpers derived from them builds a computation
// DAG; Backward on the final node computes ∂output/∂node for every node
// that produced it.
//
// Example:
//
//	a := scalar.New(2.0)
//	b := scalar.New(-3.0)
//	c := a.Mul(b).Add(a.Pow(2)) // c = a*b + a²
//
//	c.Backward()
//	fmt.Println(a.Grad) // b + 2a = 1
//	fmt.Println(b.Grad) // a = 2
//
// Gradients accumulate across backward passes; zero Grad between training
// steps (optim.SGD.ZeroGrad does this for parameters).
package scalar

import "github.com/ember-ml/ember/internal/scalar"

// Scalar is a differentiable value in the computation graph.
type Scalar = scalar.Scalar

// New creates a leaf node holding v.
func New(v float64) *Scalar {
	return scalar.New(v)
}

// NewLabeled creates a leaf node holding v with a debug label.
func NewLabeled(v float64, label string) *Scalar {
	return scalar.NewLabeled(v, label)
}
