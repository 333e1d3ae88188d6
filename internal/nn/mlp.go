package nn

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/scalar"
)

// Neuron computes tanh(Σ w_i * x_i + b) over a fixed input width.
//
// Weights and bias are leaf nodes drawn from U(-1, 1); they persist across
// forward passes while each Forward call builds fresh intermediate nodes.
type Neuron struct {
	weights []*scalar.Scalar
	bias    *scalar.Scalar
}

// NewNeuron creates a neuron with nIn inputs, initialized from rng.
func NewNeuron(nIn int, rng *rand.Rand) *Neuron {
	weights := make([]*scalar.Scalar, nIn)
	for i := range weights {
		weights[i] = Uniform(rng, 1.0, weightLabel(0, i))
	}
	return &Neuron{
		weights: weights,
		bias:    scalar.NewLabeled(0, "b"),
	}
}

// Forward computes the neuron's activation for one input vector.
func (n *Neuron) Forward(inputs []*scalar.Scalar) *scalar.Scalar {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron with %d weights got %d inputs", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}
	return act.Tanh()
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*scalar.Scalar {
	return append(append([]*scalar.Scalar{}, n.weights...), n.bias)
}

// ZeroGrad resets the neuron's parameter gradients.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}

// Layer is a fan-out of neurons over a shared input vector.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer mapping nIn inputs to nOut activations.
func NewLayer(nIn, nOut int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, nOut)
	for i := range neurons {
		neurons[i] = NewNeuron(nIn, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward computes every neuron's activation for the input vector.
func (l *Layer) Forward(inputs []*scalar.Scalar) []*scalar.Scalar {
	outputs := make([]*scalar.Scalar, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns all neuron parameters, neuron-major.
func (l *Layer) Parameters() []*scalar.Scalar {
	var params []*scalar.Scalar
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the layer's parameter gradients.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}

// MLP is a feed-forward stack of layers.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	net := nn.NewMLP(3, []int{4, 4, 1}, rng) // 3 → 4 → 4 → 1
type MLP struct {
	layers []*Layer
}

// NewMLP creates a network with nIn inputs and one layer per entry of
// layerSizes, initialized from rng.
func NewMLP(nIn int, layerSizes []int, rng *rand.Rand) *MLP {
	sizes := append([]int{nIn}, layerSizes...)
	layers := make([]*Layer, len(layerSizes))
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
	}
	return &MLP{layers: layers}
}

// Forward runs one input vector through every layer.
func (m *MLP) Forward(inputs []*scalar.Scalar) []*scalar.Scalar {
	x := inputs
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// ForwardFloats boxes a raw feature vector as leaves and runs Forward.
func (m *MLP) ForwardFloats(inputs []float64) []*scalar.Scalar {
	xs := make([]*scalar.Scalar, len(inputs))
	for i, v := range inputs {
		xs[i] = scalar.New(v)
	}
	return m.Forward(xs)
}

// Parameters returns all parameters, layer-major.
func (m *MLP) Parameters() []*scalar.Scalar {
	var params []*scalar.Scalar
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the network's parameter gradients.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}
