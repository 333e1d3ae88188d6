// Package optim implements parameter-update rules for training.
package optim

// Optimizer is the common interface for parameter-update rules.
type Optimizer interface {
	// Step applies one update from the currently accumulated gradients.
	Step()

	// ZeroGrad resets all parameter gradients. Call between steps:
	// the backward pass accumulates and never resets.
	ZeroGrad()
}
