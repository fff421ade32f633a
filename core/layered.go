package core

// Layered builds a layered DAG used by benchmarks, examples and the acyclic
// solver tests: a source, `layers` rows of `width` nodes, and a target.
//
// Every node of row i has an arc to every node of row i+1; the source feeds
// all of row 0 and all of the last row feeds the target. IDs are assigned in
// topological order (source = 0, target = N-1), so every arc satisfies
// Source(a) < Target(a).
//
// Complexity: O(layers * width^2).
func Layered(layers, width int) (g *Graph, source, target Node) {
	if layers < 1 {
		layers = 1
	}
	if width < 1 {
		width = 1
	}
	n := layers*width + 2
	m := 2*width + (layers-1)*width*width
	g = NewGraph(WithNodeCapacity(n), WithArcCapacity(m))

	source = g.AddNode()
	rows := make([][]Node, layers)
	for i := range rows {
		rows[i] = g.AddNodes(width)
	}
	target = g.AddNode()

	for _, v := range rows[0] {
		g.MustAddArc(source, v)
	}
	for i := 0; i+1 < layers; i++ {
		for _, u := range rows[i] {
			for _, v := range rows[i+1] {
				g.MustAddArc(u, v)
			}
		}
	}
	for _, u := range rows[layers-1] {
		g.MustAddArc(u, target)
	}

	return g, source, target
}
