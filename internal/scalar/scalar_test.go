package scalar_test

import (
	"math"
	"testing"

	"github.com/ember-ml/ember/internal/scalar"
)

// TestAdd_Forward tests forward addition.
func TestAdd_Forward(t *testing.T) {
	a := scalar.New(2.0)
	b := scalar.New(3.0)
	c := a.Add(b)

	if c.Value != 5.0 {
		t.Errorf("Add: Value = %f, want 5.0", c.Value)
	}
	if a.Value != 2.0 || b.Value != 3.0 {
		t.Error("Add must not mutate its operands")
	}
}

// TestAdd_Backward tests the sum rule: gradient flows unchanged to both operands.
func TestAdd_Backward(t *testing.T) {
	a := scalar.New(2.0)
	b := scalar.New(3.0)
	c := a.Add(b)

	c.Backward()

	if a.Grad != 1.0 {
		t.Errorf("d(a+b)/da = %f, want 1.0", a.Grad)
	}
	if b.Grad != 1.0 {
		t.Errorf("d(a+b)/db = %f, want 1.0", b.Grad)
	}
}

// TestMul_Backward tests the product rule.
// For c = a*b with a=2, b=3: da = b = 3, db = a = 2.
func TestMul_Backward(t *testing.T) {
	a := scalar.New(2.0)
	b := scalar.New(3.0)
	c := a.Mul(b)

	c.Backward()

	if a.Grad != 3.0 {
		t.Errorf("d(a*b)/da = %f, want 3.0", a.Grad)
	}
	if b.Grad != 2.0 {
		t.Errorf("d(a*b)/db = %f, want 2.0", b.Grad)
	}
}

// TestPow_Backward tests the power rule.
// For c = a^3 with a=2: dc/da = 3 * 2^2 = 12.
func TestPow_Backward(t *testing.T) {
	a := scalar.New(2.0)
	c := a.Pow(3)

	if c.Value != 8.0 {
		t.Errorf("Pow: Value = %f, want 8.0", c.Value)
	}

	c.Backward()

	if a.Grad != 12.0 {
		t.Errorf("d(a^3)/da = %f, want 12.0", a.Grad)
	}
}

// TestTanh_Backward tests the tanh derivative: dc/da = 1 - tanh²(a).
func TestTanh_Backward(t *testing.T) {
	a := scalar.New(0.7)
	c := a.Tanh()

	if math.Abs(c.Value-math.Tanh(0.7)) > 1e-9 {
		t.Errorf("Tanh: Value = %f, want %f", c.Value, math.Tanh(0.7))
	}

	c.Backward()

	want := 1 - c.Value*c.Value
	if math.Abs(a.Grad-want) > 1e-9 {
		t.Errorf("d(tanh(a))/da = %f, want %f", a.Grad, want)
	}
}

// TestSub tests derived subtraction: forward value and gradients.
func TestSub(t *testing.T) {
	a := scalar.New(5.0)
	b := scalar.New(3.0)
	c := a.Sub(b)

	if c.Value != 2.0 {
		t.Errorf("Sub: Value = %f, want 2.0", c.Value)
	}

	c.Backward()

	if a.Grad != 1.0 {
		t.Errorf("d(a-b)/da = %f, want 1.0", a.Grad)
	}
	if b.Grad != -1.0 {
		t.Errorf("d(a-b)/db = %f, want -1.0", b.Grad)
	}
}

// TestDiv tests derived division: c = a/b, da = 1/b, db = -a/b².
func TestDiv(t *testing.T) {
	a := scalar.New(6.0)
	b := scalar.New(2.0)
	c := a.Div(b)

	if c.Value != 3.0 {
		t.Errorf("Div: Value = %f, want 3.0", c.Value)
	}

	c.Backward()

	if math.Abs(a.Grad-0.5) > 1e-9 {
		t.Errorf("d(a/b)/da = %f, want 0.5", a.Grad)
	}
	if math.Abs(b.Grad-(-1.5)) > 1e-9 {
		t.Errorf("d(a/b)/db = %f, want -1.5", b.Grad)
	}
}

// TestDiv_ByZero tests that division by a zero-valued node degrades to NaN
// instead of panicking.
func TestDiv_ByZero(t *testing.T) {
	a := scalar.New(1.0)
	zero := scalar.New(0.0)

	c := a.Div(zero)

	if !math.IsNaN(c.Value) {
		t.Errorf("Div by zero: Value = %f, want NaN", c.Value)
	}
}

// TestFloatHelpers tests the literal-boxing convenience wrappers.
func TestFloatHelpers(t *testing.T) {
	a := scalar.New(4.0)

	if got := a.AddFloat(1.0).Value; got != 5.0 {
		t.Errorf("AddFloat: Value = %f, want 5.0", got)
	}
	if got := a.MulFloat(2.0).Value; got != 8.0 {
		t.Errorf("MulFloat: Value = %f, want 8.0", got)
	}
	if got := a.SubFloat(3.0).Value; got != 1.0 {
		t.Errorf("SubFloat: Value = %f, want 1.0", got)
	}
	if got := a.Neg().Value; got != -4.0 {
		t.Errorf("Neg: Value = %f, want -4.0", got)
	}
}

// TestFanOut_AccumulatesGradients tests additive accumulation: a leaf
// feeding two consumers receives the sum of both local partials.
func TestFanOut_AccumulatesGradients(t *testing.T) {
	x := scalar.New(3.0)

	// y = x*x + x  =>  dy/dx = 2x + 1 = 7
	y := x.Mul(x).Add(x)

	y.Backward()

	if x.Grad != 7.0 {
		t.Errorf("dy/dx = %f, want 7.0", x.Grad)
	}
}

// TestBackward_Twice_Accumulates documents the low-level contract: Backward
// never resets gradients, so a second pass without zeroing adds.
func TestBackward_Twice_Accumulates(t *testing.T) {
	a := scalar.New(2.0)
	b := scalar.New(3.0)
	c := a.Mul(b)

	c.Backward()
	c.Grad = 0 // re-seedable root
	c.Backward()

	if a.Grad != 6.0 {
		t.Errorf("a.Grad after two passes = %f, want 6.0 (3.0 accumulated twice)", a.Grad)
	}

	// Explicit zeroing restores a clean slate.
	a.Grad, b.Grad, c.Grad = 0, 0, 0
	c.Backward()
	if a.Grad != 3.0 {
		t.Errorf("a.Grad after zeroing = %f, want 3.0", a.Grad)
	}
}

// TestLabel tests that labels are carried but not load-bearing.
func TestLabel(t *testing.T) {
	w := scalar.NewLabeled(0.5, "w1")
	if w.Label != "w1" {
		t.Errorf("Label = %q, want %q", w.Label, "w1")
	}

	out := w.MulFloat(2.0)
	out.Backward()
	if w.Grad != 2.0 {
		t.Errorf("labeled node gradient = %f, want 2.0", w.Grad)
	}
}

// TestComposite_Expression tests a multi-op expression end to end:
// f = tanh(a*b + a^2), checked against the hand-derived chain rule.
func TestComposite_Expression(t *testing.T) {
	a := scalar.New(0.5)
	b := scalar.New(-1.5)

	inner := a.Mul(b).Add(a.Pow(2)) // a*b + a² = -0.5
	f := inner.Tanh()

	f.Backward()

	dTanh := 1 - f.Value*f.Value
	wantA := dTanh * (b.Value + 2*a.Value) // b + 2a
	wantB := dTanh * a.Value

	if math.Abs(a.Grad-wantA) > 1e-9 {
		t.Errorf("df/da = %f, want %f", a.Grad, wantA)
	}
	if math.Abs(b.Grad-wantB) > 1e-9 {
		t.Errorf("df/db = %f, want %f", b.Grad, wantB)
	}
}
