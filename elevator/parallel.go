package elevator

import (
	"sync/atomic"

	"github.com/katalvlaran/preflow/core"
)

// Parallel supports synchronous discharge rounds.
//
// Workers activate nodes into their own local frontier; an atomic
// discovered flag per node guarantees a node enters the next frontier at
// most once per round. Between rounds Concatenate merges the local
// frontiers. New levels are staged with StageLevel and made visible with
// ApplyLevel, so a round only ever reads the levels committed by the
// previous one.
//
// Nodes that reach MaxLevel during the capped first phase are parked and
// handed back by Unpark when the second phase starts.
type Parallel struct {
	base
	workers    int
	discovered []atomic.Bool
	staged     []int
	local      [][]core.Node
	frontier   []core.Node
	parked     []core.Node
	isParked   []bool
}

// NewParallel returns a parallel elevator for g with one local frontier per
// worker. workers below 1 is treated as 1.
func NewParallel(g core.Digraph, maxLevel, workers int) *Parallel {
	if workers < 1 {
		workers = 1
	}
	n := g.NodeCount()
	p := &Parallel{
		base:       newBase(n, maxLevel),
		workers:    workers,
		discovered: make([]atomic.Bool, n),
		staged:     make([]int, n),
		local:      make([][]core.Node, workers),
		isParked:   make([]bool, n),
	}
	for i := range p.staged {
		p.staged[i] = unset
	}

	return p
}

// Workers returns the number of local frontiers.
func (p *Parallel) Workers() int { return p.workers }

// Discover sets the discovered flag of n and reports whether this call
// was the one that set it. Safe for concurrent use.
func (p *Parallel) Discover(n core.Node) bool {
	return p.discovered[n].CompareAndSwap(false, true)
}

// Forget clears the discovered flag of n. Safe for concurrent use.
func (p *Parallel) Forget(n core.Node) { p.discovered[n].Store(false) }

// ActivateLocal adds n to the frontier of worker w unless it was already
// discovered this round. Concurrent calls must use distinct w.
func (p *Parallel) ActivateLocal(n core.Node, w int) {
	if p.Discover(n) {
		p.local[w] = append(p.local[w], n)
	}
}

// Activate adds n to the frontier of worker 0.
func (p *Parallel) Activate(n core.Node) { p.ActivateLocal(n, 0) }

// Deactivate clears the discovered flag of n.
func (p *Parallel) Deactivate(n core.Node) { p.Forget(n) }

// Active reports whether n is discovered for the next round.
func (p *Parallel) Active(n core.Node) bool { return p.discovered[n].Load() }

// Concatenate merges the local frontiers into the round frontier and
// returns it. Discovered flags are left set; the caller clears them with
// Forget once the merge is visible to all workers.
func (p *Parallel) Concatenate() []core.Node {
	p.frontier = p.frontier[:0]
	for w := range p.local {
		p.frontier = append(p.frontier, p.local[w]...)
		p.local[w] = p.local[w][:0]
	}

	return p.frontier
}

// ActiveNodes returns the frontier built by the last Concatenate.
func (p *Parallel) ActiveNodes() []core.Node { return p.frontier }

// StageLevel records the level n will take at the next ApplyLevel.
func (p *Parallel) StageLevel(n core.Node, level int) { p.staged[n] = level }

// ApplyLevel commits a staged level, if any.
func (p *Parallel) ApplyLevel(n core.Node) {
	if l := p.staged[n]; l != unset {
		p.level[n] = l
		p.staged[n] = unset
	}
}

// Park sets n aside until Unpark. Parking a parked node is a no-op.
func (p *Parallel) Park(n core.Node) {
	if p.isParked[n] {
		return
	}
	p.isParked[n] = true
	p.parked = append(p.parked, n)
}

// Unpark returns and clears the parked set.
func (p *Parallel) Unpark() []core.Node {
	out := p.parked
	p.parked = nil
	for _, n := range out {
		p.isParked[n] = false
	}

	return out
}

// InitStart resets levels, flags, frontiers and the parked set.
func (p *Parallel) InitStart() {
	p.base.InitStart()
	for i := range p.discovered {
		p.discovered[i].Store(false)
		p.staged[i] = unset
		p.isParked[i] = false
	}
	for w := range p.local {
		p.local[w] = p.local[w][:0]
	}
	p.frontier = p.frontier[:0]
	p.parked = nil
}

// Clone returns an independent copy. It must not race with a running round.
func (p *Parallel) Clone() Elevator {
	c := &Parallel{
		base:       p.base.clone(),
		workers:    p.workers,
		discovered: make([]atomic.Bool, len(p.discovered)),
		staged:     append([]int(nil), p.staged...),
		local:      make([][]core.Node, len(p.local)),
		frontier:   append([]core.Node(nil), p.frontier...),
		parked:     append([]core.Node(nil), p.parked...),
		isParked:   append([]bool(nil), p.isParked...),
	}
	for i := range p.discovered {
		c.discovered[i].Store(p.discovered[i].Load())
	}
	for w, l := range p.local {
		c.local[w] = append([]core.Node(nil), l...)
	}

	return c
}

var _ Elevator = (*Parallel)(nil)
