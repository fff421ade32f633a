package elevator

import (
	"container/list"

	"github.com/katalvlaran/preflow/core"
)

// RelabelToFront keeps every node in one ordered list, built during
// initialization: BFS-reached nodes are pushed to the front as they are
// discovered (so the deepest level comes first), unreached nodes are
// appended at MaxLevel. The driver sweeps the list and moves each node whose
// level rose to the front.
type RelabelToFront struct {
	base
	order *list.List
	elems []*list.Element
}

// NewRelabelToFront returns a relabel-to-front elevator for g.
func NewRelabelToFront(g core.Digraph, maxLevel int) *RelabelToFront {
	return &RelabelToFront{
		base:  newBase(g.NodeCount(), maxLevel),
		order: list.New(),
		elems: make([]*list.Element, g.NodeCount()),
	}
}

// Activate marks n active. List position is unaffected.
func (r *RelabelToFront) Activate(n core.Node) { r.active[n] = true }

// Deactivate marks n inactive.
func (r *RelabelToFront) Deactivate(n core.Node) { r.active[n] = false }

// Front returns the first node of the list, or InvalidNode if it is empty.
func (r *RelabelToFront) Front() core.Node {
	return value(r.order.Front())
}

// Next returns the node after n, or InvalidNode at the end of the list.
func (r *RelabelToFront) Next(n core.Node) core.Node {
	e := r.elems[n]
	if e == nil {
		return core.InvalidNode
	}

	return value(e.Next())
}

// MoveToFront moves n to the head of the list; the relative order of all
// other nodes is preserved.
func (r *RelabelToFront) MoveToFront(n core.Node) {
	if e := r.elems[n]; e != nil {
		r.order.MoveToFront(e)
	}
}

// Order returns the current list as a slice.
func (r *RelabelToFront) Order() []core.Node {
	out := make([]core.Node, 0, r.order.Len())
	for e := r.order.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(core.Node))
	}

	return out
}

// InitStart resets levels, flags and the list.
func (r *RelabelToFront) InitStart() {
	r.base.InitStart()
	r.order.Init()
	for i := range r.elems {
		r.elems[i] = nil
	}
}

// InitAddItem assigns the current depth to n and pushes it to the front.
func (r *RelabelToFront) InitAddItem(n core.Node) {
	r.base.InitAddItem(n)
	if r.elems[n] == nil {
		r.elems[n] = r.order.PushFront(n)
	}
}

// InitFinish appends every unreached node at MaxLevel.
func (r *RelabelToFront) InitFinish() {
	for i, l := range r.level {
		if l == unset {
			r.level[i] = r.maxLevel
			r.elems[i] = r.order.PushBack(core.Node(i))
		}
	}
}

// Clone returns an independent copy with the same list order.
func (r *RelabelToFront) Clone() Elevator {
	c := &RelabelToFront{
		base:  r.base.clone(),
		order: list.New(),
		elems: make([]*list.Element, len(r.elems)),
	}
	for e := r.order.Front(); e != nil; e = e.Next() {
		n := e.Value.(core.Node)
		c.elems[n] = c.order.PushBack(n)
	}

	return c
}

func value(e *list.Element) core.Node {
	if e == nil {
		return core.InvalidNode
	}

	return e.Value.(core.Node)
}

var _ Elevator = (*RelabelToFront)(nil)
