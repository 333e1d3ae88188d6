// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for composing scalar graph nodes into
// trainable feed-forward networks.
package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/scalar"
)

// Module is anything holding trainable parameters.
type Module = nn.Module

// Neuron computes tanh(Σ w_i * x_i + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nIn inputs, initialized from rng.
func NewNeuron(nIn int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nIn, rng)
}

// Layer is a fan-out of neurons over a shared input vector.
type Layer = nn.Layer

// NewLayer creates a layer mapping nIn inputs to nOut activations.
func NewLayer(nIn, nOut int, rng *rand.Rand) *Layer {
	return nn.NewLayer(nIn, nOut, rng)
}

// MLP is a feed-forward stack of layers.
type MLP = nn.MLP

// NewMLP creates a network with nIn inputs and one layer per entry of
// layerSizes.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	net := nn.NewMLP(3, []int{4, 4, 1}, rng) // 3 → 4 → 4 → 1
func NewMLP(nIn int, layerSizes []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(nIn, layerSizes, rng)
}

// MSELoss computes the mean squared error between predictions and targets
// as a differentiable scalar node.
func MSELoss(predictions, targets []*scalar.Scalar) *scalar.Scalar {
	return nn.MSELoss(predictions, targets)
}
