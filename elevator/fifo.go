package elevator

import (
	"container/list"

	"github.com/katalvlaran/preflow/core"
)

// FIFO hands out active nodes in activation order.
//
// Front(true) serves the level-capped first phase: it walks the queue with a
// cursor, removes the first entry below MaxLevel and leaves the skipped
// entries where they are. The cursor resumes from where it stopped and is
// reset once it runs off the end of the queue.
type FIFO struct {
	base
	queue  *list.List
	queued []bool
	cursor *list.Element
}

// NewFIFO returns a FIFO elevator for g with the given level cap.
func NewFIFO(g core.Digraph, maxLevel int) *FIFO {
	n := g.NodeCount()
	return &FIFO{
		base:   newBase(n, maxLevel),
		queue:  list.New(),
		queued: make([]bool, n),
	}
}

// Activate appends n to the queue unless it is already active.
func (f *FIFO) Activate(n core.Node) {
	if f.active[n] {
		return
	}
	f.active[n] = true
	if !f.queued[n] {
		f.queued[n] = true
		f.queue.PushBack(n)
	}
}

// Deactivate clears the active flag; a stale queue entry is dropped lazily.
func (f *FIFO) Deactivate(n core.Node) { f.active[n] = false }

// Front removes and returns the next active node. With limit set only nodes
// whose level is below MaxLevel qualify. The returned node is inactive.
func (f *FIFO) Front(limit bool) (core.Node, bool) {
	if !limit {
		for e := f.queue.Front(); e != nil; e = f.queue.Front() {
			n := f.remove(e)
			if f.active[n] {
				f.active[n] = false
				return n, true
			}
		}
		return core.InvalidNode, false
	}

	if f.cursor == nil {
		f.cursor = f.queue.Front()
	}
	for f.cursor != nil {
		e := f.cursor
		n := e.Value.(core.Node)
		switch {
		case !f.active[n]:
			f.cursor = e.Next()
			f.remove(e)
		case f.level[n] < f.maxLevel:
			f.cursor = e.Next()
			f.remove(e)
			f.active[n] = false
			return n, true
		default:
			f.cursor = e.Next()
		}
	}

	return core.InvalidNode, false
}

// Len returns the number of queued entries, stale ones included.
func (f *FIFO) Len() int { return f.queue.Len() }

func (f *FIFO) remove(e *list.Element) core.Node {
	if f.cursor == e {
		f.cursor = e.Next()
	}
	n := f.queue.Remove(e).(core.Node)
	f.queued[n] = false

	return n
}

// InitStart resets levels, flags and the queue.
func (f *FIFO) InitStart() {
	f.base.InitStart()
	f.queue.Init()
	for i := range f.queued {
		f.queued[i] = false
	}
	f.cursor = nil
}

// Clone returns an independent copy with the same queue order.
func (f *FIFO) Clone() Elevator {
	c := &FIFO{
		base:   f.base.clone(),
		queue:  list.New(),
		queued: append([]bool(nil), f.queued...),
	}
	for e := f.queue.Front(); e != nil; e = e.Next() {
		ce := c.queue.PushBack(e.Value)
		if e == f.cursor {
			c.cursor = ce
		}
	}

	return c
}

var _ Elevator = (*FIFO)(nil)
