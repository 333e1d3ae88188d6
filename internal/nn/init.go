package nn

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/scalar"
)

// Uniform creates a labeled leaf parameter drawn from U(-bound, bound).
//
// The random source is explicit: constructors thread a *rand.Rand through
// so runs are reproducible from a seed. There is no package-level RNG.
func Uniform(rng *rand.Rand, bound float64, label string) *scalar.Scalar {
	return scalar.NewLabeled((rng.Float64()*2.0-1.0)*bound, label)
}

// weightLabel names a weight parameter for debugging output.
func weightLabel(neuron, input int) string {
	return fmt.Sprintf("w[%d][%d]", neuron, input)
}
