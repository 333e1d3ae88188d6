package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/scalar"
)

// MSELoss computes the mean squared error between predictions and targets
// as a scalar graph node, so Backward on the result reaches every
// parameter that produced the predictions.
//
// Lengths must match; a mismatch is a programmer error.
func MSELoss(predictions, targets []*scalar.Scalar) *scalar.Scalar {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("nn: %d predictions vs %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("nn: MSELoss over zero samples")
	}

	loss := scalar.New(0)
	for i, p := range predictions {
		loss = loss.Add(p.Sub(targets[i]).Pow(2))
	}
	return loss.MulFloat(1.0 / float64(len(predictions)))
}
