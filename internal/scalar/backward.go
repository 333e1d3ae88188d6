package scalar

import "math"

// Backward computes ∂s/∂node for every node reachable from s.
//
// Algorithm:
//  1. Depth-first post-order traversal of the operand graph, visiting each
//     distinct node once. Visited tracking is keyed by pointer identity,
//     never by value: two nodes with equal contents are distinct vertices.
//     Post-order guarantees a node is appended only after all of its
//     operands, so the reversed list is a valid topological order from s
//     down to the leaves.
//  2. Seed s.Grad = 1 (d(s)/d(s) = 1).
//  3. Walk the list in reverse and apply each node's local gradient rule.
//     Reverse-topological order means a node propagates only after its own
//     Grad has received every contribution from its consumers; that
//     ordering is what makes the chain-rule replay correct.
//
// Runs in O(V+E). Gradients are accumulated, never reset: the caller zeroes
// Grad between passes.
func (s *Scalar) Backward() {
	order := topoSort(s)

	s.Grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}
}

// topoSort returns the nodes reachable from root in post-order: every node
// appears after all of its operands.
func topoSort(root *Scalar) []*Scalar {
	visited := make(map[*Scalar]struct{})
	order := make([]*Scalar, 0, 64)

	var visit func(*Scalar)
	visit = func(n *Scalar) {
		if _, seen := visited[n]; seen {
			return
		}
		visited[n] = struct{}{}
		for _, operand := range n.operands {
			if operand != nil {
				visit(operand)
			}
		}
		order = append(order, n)
	}
	visit(root)

	return order
}

// propagate applies the node's local gradient rule, accumulating into its
// operands. Accumulation must be += throughout: a node fanning out to
// several consumers receives one contribution per consumer.
func (s *Scalar) propagate() {
	a, b := s.operands[0], s.operands[1]

	switch s.op {
	case opLeaf:
		// No operands, nothing to propagate.

	case opAdd:
		a.Grad += s.Grad
		b.Grad += s.Grad

	case opMul:
		a.Grad += b.Value * s.Grad
		b.Grad += a.Value * s.Grad

	case opPow:
		a.Grad += s.exponent * math.Pow(a.Value, s.exponent-1) * s.Grad

	case opTanh:
		a.Grad += (1 - s.Value*s.Value) * s.Grad
	}
}
