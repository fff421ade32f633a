package elevator

import "github.com/katalvlaran/preflow/core"

// HighestLabel hands out the active node with the largest level.
//
// Nodes are bucketed by level into 2*MaxLevel stacks. Two cursors track the
// highest possibly nonempty bucket: one over all levels, one capped below
// MaxLevel for the first phase. Activation may raise a cursor; selection only
// lowers it, so a phase scans each level a bounded number of times.
// Deactivation is lazy: stale bucket entries are discarded when reached.
type HighestLabel struct {
	base
	buckets        [][]core.Node
	highest        int
	highestLimited int
}

// NewHighestLabel returns a highest-label elevator for g.
func NewHighestLabel(g core.Digraph, maxLevel int) *HighestLabel {
	return &HighestLabel{
		base:           newBase(g.NodeCount(), maxLevel),
		buckets:        make([][]core.Node, 2*maxLevel),
		highest:        -1,
		highestLimited: -1,
	}
}

// Activate pushes n onto the bucket of its current level.
func (h *HighestLabel) Activate(n core.Node) {
	if h.active[n] {
		return
	}
	h.active[n] = true
	l := h.level[n]
	h.buckets[l] = append(h.buckets[l], n)
	if l > h.highest {
		h.highest = l
	}
	if l < h.maxLevel && l > h.highestLimited {
		h.highestLimited = l
	}
}

// Deactivate clears the active flag.
func (h *HighestLabel) Deactivate(n core.Node) { h.active[n] = false }

// Lift sets the level of n. An active node is re-bucketed at its new level.
func (h *HighestLabel) Lift(n core.Node, level int) {
	h.level[n] = level
	if h.active[n] {
		h.active[n] = false
		h.Activate(n)
	}
}

// Highest removes and returns an active node of the highest level, capped
// below MaxLevel when limit is set. The returned node is inactive.
func (h *HighestLabel) Highest(limit bool) (core.Node, bool) {
	cur := &h.highest
	if limit {
		cur = &h.highestLimited
		if *cur >= h.maxLevel {
			*cur = h.maxLevel - 1
		}
	}

	for *cur >= 0 {
		b := h.buckets[*cur]
		for len(b) > 0 {
			n := b[len(b)-1]
			b = b[:len(b)-1]
			// The entry is stale if n went inactive or moved to another level.
			if h.active[n] && h.level[n] == *cur {
				h.buckets[*cur] = b
				h.active[n] = false
				return n, true
			}
		}
		h.buckets[*cur] = b
		*cur--
	}

	return core.InvalidNode, false
}

// InitStart resets levels, flags, buckets and cursors.
func (h *HighestLabel) InitStart() {
	h.base.InitStart()
	for i := range h.buckets {
		h.buckets[i] = h.buckets[i][:0]
	}
	h.highest = -1
	h.highestLimited = -1
}

// Clone returns an independent copy.
func (h *HighestLabel) Clone() Elevator {
	c := &HighestLabel{
		base:           h.base.clone(),
		buckets:        make([][]core.Node, len(h.buckets)),
		highest:        h.highest,
		highestLimited: h.highestLimited,
	}
	for i, b := range h.buckets {
		c.buckets[i] = append([]core.Node(nil), b...)
	}

	return c
}

var _ Elevator = (*HighestLabel)(nil)
