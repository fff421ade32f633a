package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrArcNotFound indicates an operation referenced a non-existent arc.
	ErrArcNotFound = errors.New("core: arc not found")
)

// Node identifies a node of a Digraph. Valid values are 0..NodeCount()-1.
type Node int

// Arc identifies an arc of a Digraph. Valid values are 0..ArcCount()-1.
type Arc int

// Sentinels for "no node" and "no arc".
const (
	InvalidNode Node = -1
	InvalidArc  Arc  = -1
)

// Digraph is the minimal read-only capability set the flow solvers need from
// a directed graph. Identifiers must be dense and stable for the lifetime of
// a solve. Returned arc slices are owned by the graph and must not be
// modified by the caller.
type Digraph interface {
	// NodeCount returns the number of nodes N.
	NodeCount() int
	// ArcCount returns the number of arcs M.
	ArcCount() int
	// OutArcs returns the arcs leaving n, in insertion order.
	OutArcs(n Node) []Arc
	// InArcs returns the arcs entering n, in insertion order.
	InArcs(n Node) []Arc
	// Source returns the tail of a.
	Source(a Arc) Node
	// Target returns the head of a.
	Target(a Arc) Node
}

// arcEnds stores the endpoints of one arc.
type arcEnds struct {
	source Node
	target Node
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithNodeCapacity pre-allocates room for n nodes.
func WithNodeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.out = make([][]Arc, 0, n)
			g.in = make([][]Arc, 0, n)
		}
	}
}

// WithArcCapacity pre-allocates room for m arcs.
func WithArcCapacity(m int) GraphOption {
	return func(g *Graph) {
		if m > 0 {
			g.arcs = make([]arcEnds, 0, m)
		}
	}
}

// Graph is a list-style directed graph with dense node and arc IDs.
// Parallel arcs and self-loops are allowed; solvers skip self-loops.
//
// out[n] and in[n] hold arc IDs in insertion order, so iteration order is
// deterministic and matches the order arcs were added.
type Graph struct {
	arcs []arcEnds
	out  [][]Arc
	in   [][]Arc
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any pre-allocation requested by options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Compile-time check that *Graph satisfies Digraph.
var _ Digraph = (*Graph)(nil)
