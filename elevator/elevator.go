// Package elevator implements the active-node schedulers of the
// push-relabel engine.
//
// An Elevator owns two things per node: its level (height label) and its
// active flag. The engine decides when a node becomes active or is lifted;
// the Elevator decides in which order active nodes are handed back.
//
// Variants:
//
//	FIFO            – arrival order, with a cursor for the level-capped phase.
//	HighestLabel    – 2*maxLevel buckets, highest nonempty bucket first.
//	RelabelToFront  – one ordered list over all nodes, lifted nodes move first.
//	Parallel        – per-worker frontiers merged between synchronous rounds.
//
// Initialization protocol, run once per engine init:
//
//	InitStart()           every level becomes unset, every node inactive
//	InitAddItem(n)        n gets the current BFS depth
//	InitNewLevel()        advance the depth by one
//	InitFinish()          unset nodes get MaxLevel()
//
// None of the variants is safe for concurrent use except the documented
// atomic operations of Parallel.
package elevator

import "github.com/katalvlaran/preflow/core"

// Elevator is the scheduling contract shared by all variants.
type Elevator interface {
	// Activate marks n active. Activating an active node is a no-op.
	Activate(n core.Node)
	// Deactivate marks n inactive.
	Deactivate(n core.Node)
	// Active reports whether n is active.
	Active(n core.Node) bool
	// Level returns the label of n.
	Level(n core.Node) int
	// Lift sets the label of n. Callers only ever raise labels.
	Lift(n core.Node, level int)
	// MaxLevel returns the level cap, normally the node count.
	MaxLevel() int
	// NodeCount returns the number of nodes the elevator was sized for.
	NodeCount() int

	InitStart()
	InitAddItem(n core.Node)
	InitNewLevel()
	InitFinish()

	// Clone returns an independent deep copy.
	Clone() Elevator
}

// unset marks a level not yet assigned during initialization.
const unset = -1

// base holds the state every variant shares.
type base struct {
	level     []int
	active    []bool
	maxLevel  int
	initLevel int
}

func newBase(nodes, maxLevel int) base {
	return base{
		level:    make([]int, nodes),
		active:   make([]bool, nodes),
		maxLevel: maxLevel,
	}
}

func (b *base) Active(n core.Node) bool { return b.active[n] }
func (b *base) Level(n core.Node) int { return b.level[n] }
func (b *base) Lift(n core.Node, level int) { b.level[n] = level }
func (b *base) MaxLevel() int { return b.maxLevel }
func (b *base) NodeCount() int { return len(b.level) }

func (b *base) InitStart() {
	for i := range b.level {
		b.level[i] = unset
		b.active[i] = false
	}
	b.initLevel = 0
}

func (b *base) InitAddItem(n core.Node) { b.level[n] = b.initLevel }

func (b *base) InitNewLevel() { b.initLevel++ }

func (b *base) InitFinish() {
	for i, l := range b.level {
		if l == unset {
			b.level[i] = b.maxLevel
		}
	}
}

func (b *base) clone() base {
	return base{
		level:     append([]int(nil), b.level...),
		active:    append([]bool(nil), b.active...),
		maxLevel:  b.maxLevel,
		initLevel: b.initLevel,
	}
}
