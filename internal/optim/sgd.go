package optim

import "github.com/ember-ml/ember/internal/scalar"

// SGD implements vanilla stochastic gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Example:
//
//	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for step := 0; step < steps; step++ {
//	    loss := trainStep(net, batch)
//	    loss.Backward()
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
type SGD struct {
	params []*scalar.Scalar
	lr     float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*scalar.Scalar, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step applies one gradient-descent update to every parameter.
func (s *SGD) Step() {
	for _, p := range s.params {
		p.Value -= s.lr * p.Grad
	}
}

// ZeroGrad resets every parameter's gradient accumulator.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.Grad = 0
	}
}
