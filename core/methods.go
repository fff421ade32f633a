package core

import "fmt"

// AddNode appends a new node and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() Node {
	n := Node(len(g.out))
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return n
}

// AddNodes appends n nodes and returns their IDs in order.
// Complexity: O(n).
func (g *Graph) AddNodes(n int) []Node {
	nodes := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, g.AddNode())
	}

	return nodes
}

// AddArc appends an arc u→v and returns its ID.
// Returns ErrNodeNotFound if either endpoint does not exist.
// Complexity: O(1) amortized.
func (g *Graph) AddArc(u, v Node) (Arc, error) {
	if !g.HasNode(u) {
		return InvalidArc, fmt.Errorf("%w: source %d", ErrNodeNotFound, u)
	}
	if !g.HasNode(v) {
		return InvalidArc, fmt.Errorf("%w: target %d", ErrNodeNotFound, v)
	}

	a := Arc(len(g.arcs))
	g.arcs = append(g.arcs, arcEnds{source: u, target: v})
	g.out[u] = append(g.out[u], a)
	g.in[v] = append(g.in[v], a)

	return a, nil
}

// MustAddArc is AddArc for graphs built from trusted input; it panics on
// an unknown endpoint.
func (g *Graph) MustAddArc(u, v Node) Arc {
	a, err := g.AddArc(u, v)
	if err != nil {
		panic(err)
	}

	return a
}

// HasNode reports whether n is a node of g.
func (g *Graph) HasNode(n Node) bool {
	return n >= 0 && int(n) < len(g.out)
}

// HasArc reports whether a is an arc of g.
func (g *Graph) HasArc(a Arc) bool {
	return a >= 0 && int(a) < len(g.arcs)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.out) }

// ArcCount returns the number of arcs.
func (g *Graph) ArcCount() int { return len(g.arcs) }

// OutArcs returns the arcs leaving n. The slice must not be modified.
func (g *Graph) OutArcs(n Node) []Arc { return g.out[n] }

// InArcs returns the arcs entering n. The slice must not be modified.
func (g *Graph) InArcs(n Node) []Arc { return g.in[n] }

// Source returns the tail of a.
func (g *Graph) Source(a Arc) Node { return g.arcs[a].source }

// Target returns the head of a.
func (g *Graph) Target(a Arc) Node { return g.arcs[a].target }

// Endpoints returns both ends of a, or ErrArcNotFound.
func (g *Graph) Endpoints(a Arc) (Node, Node, error) {
	if !g.HasArc(a) {
		return InvalidNode, InvalidNode, fmt.Errorf("%w: %d", ErrArcNotFound, a)
	}

	return g.arcs[a].source, g.arcs[a].target, nil
}

// Degree returns the in- and out-degree of n.
func (g *Graph) Degree(n Node) (in, out int, err error) {
	if !g.HasNode(n) {
		return 0, 0, fmt.Errorf("%w: %d", ErrNodeNotFound, n)
	}

	return len(g.in[n]), len(g.out[n]), nil
}

// Clone returns a deep copy of g with identical IDs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		arcs: append([]arcEnds(nil), g.arcs...),
		out:  make([][]Arc, len(g.out)),
		in:   make([][]Arc, len(g.in)),
	}
	for i := range g.out {
		c.out[i] = append([]Arc(nil), g.out[i]...)
		c.in[i] = append([]Arc(nil), g.in[i]...)
	}

	return c
}
