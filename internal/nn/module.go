// Package nn composes scalar graph nodes into trainable feed-forward
// networks: a Neuron is a weighted sum plus bias through tanh, a Layer fans
// neurons out over a shared input, and an MLP chains layers. Every forward
// pass builds a fresh computation graph, so one Backward on the loss node
// fills the gradients of every parameter.
package nn

import "github.com/ember-ml/ember/internal/scalar"

// Module is anything holding trainable parameters.
type Module interface {
	// Parameters returns every trainable leaf node, in a stable order.
	Parameters() []*scalar.Scalar

	// ZeroGrad resets the gradient accumulator of every parameter.
	// Must be called between training steps: Backward only accumulates.
	ZeroGrad()
}

// zeroGrad resets gradients for a parameter slice.
func zeroGrad(params []*scalar.Scalar) {
	for _, p := range params {
		p.Grad = 0
	}
}
