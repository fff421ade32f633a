package core

// reversed is a zero-copy view of a Digraph with every arc flipped.
// Node and arc IDs are shared with the underlying graph, so maps keyed on
// the original remain valid on the view.
type reversed struct {
	g Digraph
}

// Reverse returns a read-only view of g in which each arc u→v appears as v→u.
// Running a solver from t to s on Reverse(g) yields the same flow value as
// s to t on g, and every per-arc map carries over unchanged.
//
// Complexity: O(1); every accessor delegates to g.
func Reverse(g Digraph) Digraph {
	if r, ok := g.(reversed); ok {
		return r.g
	}

	return reversed{g: g}
}

func (r reversed) NodeCount() int { return r.g.NodeCount() }
func (r reversed) ArcCount() int { return r.g.ArcCount() }
func (r reversed) OutArcs(n Node) []Arc { return r.g.InArcs(n) }
func (r reversed) InArcs(n Node) []Arc { return r.g.OutArcs(n) }
func (r reversed) Source(a Arc) Node { return r.g.Target(a) }
func (r reversed) Target(a Arc) Node { return r.g.Source(a) }
