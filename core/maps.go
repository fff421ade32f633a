package core

// ArcReader is the read-only view of a per-arc value map, such as the
// capacity map handed to a solver.
type ArcReader[V any] interface {
	At(a Arc) V
}

// ArcMap stores one value per arc in a dense slice indexed by Arc.
type ArcMap[V any] struct {
	values []V
}

// NewArcMap allocates an ArcMap sized for g, every entry set to the zero value.
func NewArcMap[V any](g Digraph) *ArcMap[V] {
	return &ArcMap[V]{values: make([]V, g.ArcCount())}
}

// ArcMapOf wraps values without copying. values[i] is the value of Arc(i).
func ArcMapOf[V any](values []V) *ArcMap[V] {
	return &ArcMap[V]{values: values}
}

// At returns the value of a.
func (m *ArcMap[V]) At(a Arc) V { return m.values[a] }

// Set assigns v to a.
func (m *ArcMap[V]) Set(a Arc, v V) { m.values[a] = v }

// Len returns the number of entries.
func (m *ArcMap[V]) Len() int { return len(m.values) }

// Fill sets every entry to v.
func (m *ArcMap[V]) Fill(v V) {
	for i := range m.values {
		m.values[i] = v
	}
}

// Values exposes the backing slice. Writes through it are visible in m.
func (m *ArcMap[V]) Values() []V { return m.values }

// Clone returns an independent copy of m.
func (m *ArcMap[V]) Clone() *ArcMap[V] {
	return &ArcMap[V]{values: append([]V(nil), m.values...)}
}

// NodeMap stores one value per node in a dense slice indexed by Node.
type NodeMap[V any] struct {
	values []V
}

// NewNodeMap allocates a NodeMap sized for g.
func NewNodeMap[V any](g Digraph) *NodeMap[V] {
	return &NodeMap[V]{values: make([]V, g.NodeCount())}
}

// At returns the value of n.
func (m *NodeMap[V]) At(n Node) V { return m.values[n] }

// Set assigns v to n.
func (m *NodeMap[V]) Set(n Node, v V) { m.values[n] = v }

// Len returns the number of entries.
func (m *NodeMap[V]) Len() int { return len(m.values) }

// Fill sets every entry to v.
func (m *NodeMap[V]) Fill(v V) {
	for i := range m.values {
		m.values[i] = v
	}
}

// Values exposes the backing slice.
func (m *NodeMap[V]) Values() []V { return m.values }

// Clone returns an independent copy of m.
func (m *NodeMap[V]) Clone() *NodeMap[V] {
	return &NodeMap[V]{values: append([]V(nil), m.values...)}
}
