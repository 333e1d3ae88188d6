// Package scalar implements reverse-mode automatic differentiation over
// scalar values.
//
// Every operation (Add, Mul, Pow, Tanh and the helpers derived from them)
// returns a brand-new Scalar that records which nodes produced it. Building
// an expression therefore builds an append-only DAG: edges point from a
// result to its operands, and a node with no operands is a leaf (an input
// or a trainable parameter). Calling Backward on the final node replays the
// chain rule once, in reverse topological order, leaving ∂root/∂node in
// every reachable node's Grad field.
//
// Usage:
//
//	a := scalar.New(2.0)
//	b := scalar.New(3.0)
//	c := a.Mul(b) // c.Value == 6
//
//	c.Backward()
//	fmt.Println(a.Grad) // dc/da = b = 3
//
// Gradients accumulate with += so that a node feeding several consumers
// receives every contribution. The engine never zeroes gradients on its
// own: resetting Grad between training steps is the caller's job, and
// running Backward twice over overlapping graphs without zeroing adds the
// two results together.
package scalar

import (
	"log"
	"math"
)

// op identifies how a Scalar was produced. Each operation carries its own
// local gradient rule, applied in backward.go; keeping the operator set as
// a closed enum (rather than per-node closures) makes the rules
// exhaustively testable and avoids an allocation per node.
type op uint8

const (
	opLeaf op = iota // no operands, no gradient to propagate
	opAdd
	opMul
	opPow // unary, exponent stored on the node
	opTanh
)

// Scalar is a single differentiable value in the computation graph.
//
// Value and the operand edges are immutable after construction; Grad is the
// only mutable field and is written during a backward pass (or zeroed
// explicitly by the caller). Sharing is safe: the same node may appear as
// an operand of any number of downstream nodes, and it must stay reachable
// for as long as any of them is.
//
// Not safe for concurrent use: gradient accumulation is an unguarded +=.
type Scalar struct {
	Value float64
	Grad  float64

	// Label is an optional human-readable tag for debugging. It carries
	// no semantics.
	Label string

	op       op
	operands [2]*Scalar // nil-padded; [1] is nil for unary ops
	exponent float64    // opPow only
}

// New creates a leaf node holding v.
func New(v float64) *Scalar {
	return &Scalar{Value: v}
}

// NewLabeled creates a leaf node holding v with a debug label.
func NewLabeled(v float64, label string) *Scalar {
	return &Scalar{Value: v, Label: label}
}

// Add returns a new node representing s + other.
//
// Local gradients: d(a+b)/da = 1 and d(a+b)/db = 1, so the output
// gradient flows unchanged to both operands.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return &Scalar{
		Value:    s.Value + other.Value,
		op:       opAdd,
		operands: [2]*Scalar{s, other},
	}
}

// AddFloat returns s + v, boxing v as a leaf node first.
func (s *Scalar) AddFloat(v float64) *Scalar {
	return s.Add(New(v))
}

// Mul returns a new node representing s * other.
//
// Local gradients: d(a*b)/da = b and d(a*b)/db = a (product rule).
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return &Scalar{
		Value:    s.Value * other.Value,
		op:       opMul,
		operands: [2]*Scalar{s, other},
	}
}

// MulFloat returns s * v, boxing v as a leaf node first.
func (s *Scalar) MulFloat(v float64) *Scalar {
	return s.Mul(New(v))
}

// Pow returns a new node representing s raised to a constant exponent.
//
// Local gradient: d(x^n)/dx = n * x^(n-1). The exponent is a plain float,
// not a graph node, so no gradient flows to it.
func (s *Scalar) Pow(exponent float64) *Scalar {
	return &Scalar{
		Value:    math.Pow(s.Value, exponent),
		op:       opPow,
		operands: [2]*Scalar{s, nil},
		exponent: exponent,
	}
}

// Neg returns -s, implemented as s * (-1).
func (s *Scalar) Neg() *Scalar {
	return s.MulFloat(-1)
}

// Sub returns s - other, implemented as s + (-other).
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return s.Add(other.Neg())
}

// SubFloat returns s - v, boxing v as a leaf node first.
func (s *Scalar) SubFloat(v float64) *Scalar {
	return s.Sub(New(v))
}

// Div returns s / other, implemented as s * other^(-1).
//
// Division by a zero-valued node is recoverable: a diagnostic is logged and
// a NaN-valued leaf is returned, so downstream values degrade to NaN
// instead of the program halting.
func (s *Scalar) Div(other *Scalar) *Scalar {
	if other.Value == 0 {
		log.Printf("scalar: division by zero-valued node, result degrades to NaN")
		return New(math.NaN())
	}
	return s.Mul(other.Pow(-1))
}

// Tanh returns the hyperbolic tangent of s.
//
// The forward value is computed as (e^{2x}-1)/(e^{2x}+1); the local
// gradient reuses the output: d(tanh(x))/dx = 1 - tanh²(x).
func (s *Scalar) Tanh() *Scalar {
	e2x := math.Exp(2 * s.Value)
	return &Scalar{
		Value:    (e2x - 1) / (e2x + 1),
		op:       opTanh,
		operands: [2]*Scalar{s, nil},
	}
}
