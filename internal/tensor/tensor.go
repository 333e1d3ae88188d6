// Package tensor provides a shape-tagged dense tensor over scalar graph
// nodes.
//
// A Tensor is flat row-major storage of *scalar.Scalar plus a Shape.
// Element-wise operations (Add, Mul, Tanh) pair cells one-to-one and build
// graph nodes, so gradients flow through them exactly as through the
// underlying scalar ops. Shapes must match exactly: there is no
// broadcasting.
//
// Two operations are deliberately not differentiable: Sum and MatMul
// compute over raw float values and wrap their results in fresh leaf nodes
// with no operand linkage back to the inputs. They are diagnostic and
// composition utilities; training graphs are built from the element-wise
// ops and the nn package, which stay on the scalar graph throughout.
package tensor

import (
	"fmt"
	"log"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/ember-ml/ember/internal/scalar"
)

// Tensor is dense row-major storage of scalar nodes with a shape tag.
//
// The storage cells are shared with the computation graph: operations never
// mutate input cells, they allocate new output nodes. The invariant
// len(storage) == shape.NumElements() holds at all times.
type Tensor struct {
	shape   Shape
	storage []*scalar.Scalar
}

// New creates a 1-D tensor wrapping the given scalar nodes.
// Shape is [len(values)].
func New(values []*scalar.Scalar) *Tensor {
	storage := make([]*scalar.Scalar, len(values))
	copy(storage, values)
	return &Tensor{
		shape:   Shape{len(values)},
		storage: storage,
	}
}

// Full creates a tensor of the given shape with every cell initialized to
// value. Each cell gets its own fresh leaf node, so per-cell gradients are
// independent from the start (no aliased fill node).
func Full(value float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	storage := make([]*scalar.Scalar, shape.NumElements())
	for i := range storage {
		storage[i] = scalar.New(value)
	}
	return &Tensor{
		shape:   shape.Clone(),
		storage: storage,
	}, nil
}

// FromFloats creates a tensor of the given shape, boxing each float as a
// fresh leaf node.
func FromFloats(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	storage := make([]*scalar.Scalar, len(data))
	for i, v := range data {
		storage[i] = scalar.New(v)
	}
	return &Tensor{
		shape:   shape.Clone(),
		storage: storage,
	}, nil
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.storage)
}

// View reshapes the tensor in place. Storage is untouched; only the shape
// tag changes. Fails without mutation when the new shape's element count
// differs from the current one.
func (t *Tensor) View(newShape ...int) error {
	shape := Shape(newShape)
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.NumElements() != len(t.storage) {
		return fmt.Errorf("view: shape %v has %d elements, tensor has %d", shape, shape.NumElements(), len(t.storage))
	}

	t.shape = shape.Clone()
	return nil
}

// linearIndex converts multi-dimensional indices to a row-major offset.
// Out-of-range indices are a programmer error and panic.
func (t *Tensor) linearIndex(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: got %d indices for shape %v", len(indices), t.shape))
	}
	strides := t.shape.ComputeStrides()
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d of shape %v", idx, i, t.shape))
		}
		offset += idx * strides[i]
	}
	return offset
}

// At returns the scalar node at the given indices.
func (t *Tensor) At(indices ...int) *scalar.Scalar {
	return t.storage[t.linearIndex(indices)]
}

// Set replaces the scalar node at the given indices.
func (t *Tensor) Set(s *scalar.Scalar, indices ...int) {
	t.storage[t.linearIndex(indices)] = s
}

// Add returns the element-wise sum of t and other. Shapes must match
// exactly; on mismatch an error is returned and neither input is touched.
// Gradient-preserving: each output cell is a scalar Add node.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("add: shape mismatch %v vs %v", t.shape, other.shape)
	}

	storage := make([]*scalar.Scalar, len(t.storage))
	for i := range storage {
		storage[i] = t.storage[i].Add(other.storage[i])
	}
	return &Tensor{shape: t.shape.Clone(), storage: storage}, nil
}

// Mul returns the element-wise product of t and other. Same contract as Add.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("mul: shape mismatch %v vs %v", t.shape, other.shape)
	}

	storage := make([]*scalar.Scalar, len(t.storage))
	for i := range storage {
		storage[i] = t.storage[i].Mul(other.storage[i])
	}
	return &Tensor{shape: t.shape.Clone(), storage: storage}, nil
}

// Tanh applies tanh element-wise. Gradient-preserving, shape unchanged.
func (t *Tensor) Tanh() *Tensor {
	storage := make([]*scalar.Scalar, len(t.storage))
	for i := range storage {
		storage[i] = t.storage[i].Tanh()
	}
	return &Tensor{shape: t.shape.Clone(), storage: storage}
}

// Sum reduces every element to a single-cell tensor of shape [1].
//
// The reduction runs over raw float values and the result is a fresh leaf
// node: it is NOT differentiable, no gradient flows back to the inputs.
// Differentiable reductions belong in the scalar graph (chain Add nodes).
func (t *Tensor) Sum() *Tensor {
	total := 0.0
	for _, s := range t.storage {
		total += s.Value
	}
	return &Tensor{
		shape:   Shape{1},
		storage: []*scalar.Scalar{scalar.New(total)},
	}
}

// MatMul computes the 2-D matrix product t @ other with shape
// [t.shape[0], other.shape[1]]. Both tensors must be 2-D and the inner
// dimensions must agree; violations return an error without mutation.
//
// The product runs over raw float values via gonum and the output cells
// are fresh leaf nodes: like Sum, MatMul is NOT differentiable.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		return nil, fmt.Errorf("matmul: requires 2-D tensors, got shapes %v and %v", t.shape, other.shape)
	}
	if t.shape[1] != other.shape[0] {
		return nil, fmt.Errorf("matmul: inner dimensions disagree: %v vs %v", t.shape, other.shape)
	}

	rows, inner, cols := t.shape[0], t.shape[1], other.shape[1]

	a := mat.NewDense(rows, inner, t.values())
	b := mat.NewDense(inner, cols, other.values())
	var c mat.Dense
	c.Mul(a, b)

	storage := make([]*scalar.Scalar, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			storage[i*cols+j] = scalar.New(c.At(i, j))
		}
	}
	return &Tensor{shape: Shape{rows, cols}, storage: storage}, nil
}

// values flattens the storage into raw floats, row-major.
func (t *Tensor) values() []float64 {
	out := make([]float64, len(t.storage))
	for i, s := range t.storage {
		out[i] = s.Value
	}
	return out
}

// Backward runs the backward pass rooted at this tensor's single element.
// Valid only for scalar tensors (element count 1); calling it on anything
// larger is a reported no-op.
func (t *Tensor) Backward() error {
	if len(t.storage) != 1 {
		log.Printf("tensor: backward called on non-scalar tensor of shape %v", t.shape)
		return fmt.Errorf("backward: tensor of shape %v is not a scalar", t.shape)
	}

	t.storage[0].Backward()
	return nil
}

// String renders the shape and values as nested brackets. Diagnostic only,
// not a stable serialization format.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v ", t.shape)
	t.render(&sb, 0, 0)
	return sb.String()
}

// render writes the nested-bracket form of the sub-tensor rooted at the
// given dimension and storage offset.
func (t *Tensor) render(sb *strings.Builder, dim, offset int) {
	if dim == len(t.shape) {
		fmt.Fprintf(sb, "%g", t.storage[offset].Value)
		return
	}

	stride := t.shape.ComputeStrides()[dim]
	sb.WriteByte('[')
	for i := 0; i < t.shape[dim]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		t.render(sb, dim+1, offset+i*stride)
	}
	sb.WriteByte(']')
}
