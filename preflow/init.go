package preflow

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/elevator"
)

// Init starts a solve from the zero flow.
//
// Steps:
//  1. Allocate storage on first use; zero flow and excess.
//  2. Label nodes by residual BFS distance to the target (initLevels).
//  3. Saturate every source arc with positive capacity and activate the
//     receiving node unless it is the target.
//
// Complexity: O(V + E).
func (e *Engine[V]) Init() error {
	if err := e.ensureStructures(); err != nil {
		return err
	}
	e.flow.Fill(0)
	for i := range e.excess {
		e.excess[i] = 0
	}
	e.stats = Stats{}
	e.invalidateCuts()
	e.initLevels()

	for _, a := range e.g.OutArcs(e.source) {
		v := e.g.Target(a)
		c := e.capacity.At(a)
		if v == e.source || !e.tol.Positive(c) {
			continue
		}
		e.flow.Set(a, c)
		e.excess[v] = e.tol.Add(e.excess[v], c)
		e.excess[e.source] = e.tol.Debit(e.excess[e.source], c)
		e.activate(v)
	}
	e.state = Initialized

	return nil
}

// InitFlow starts a solve from a caller-supplied flow, typically the result
// of a previous solve whose capacities were then edited.
//
// Excess is recomputed by conservation; a non-source node left with
// negative excess makes the seed infeasible and InitFlow returns
// ErrInfeasibleFlow without touching the elevator. Otherwise levels are
// rebuilt by BFS, source arcs are saturated, flow on arcs entering the
// source is returned to their tails, and every node with positive excess is
// activated.
//
// Complexity: O(V + E).
func (e *Engine[V]) InitFlow(seed core.ArcReader[V]) error {
	if err := e.ensureStructures(); err != nil {
		return err
	}

	return e.initFlow(seed)
}

// InitFlowWith is InitFlow on a caller-owned elevator. The engine uses
// it for all further phases and never copies it, so after the solve the
// same instance is returned by Elevator and can seed the next one.
func (e *Engine[V]) InitFlowWith(seed core.ArcReader[V], elev elevator.Elevator) error {
	if elev == nil {
		return fmt.Errorf("%w: nil elevator", ErrElevatorMismatch)
	}
	if err := e.bind(borrowedHandle(elev)); err != nil {
		return err
	}
	if err := e.ensureStructures(); err != nil {
		return err
	}

	return e.initFlow(seed)
}

func (e *Engine[V]) initFlow(seed core.ArcReader[V]) error {
	for a := 0; a < e.g.ArcCount(); a++ {
		e.flow.Set(core.Arc(a), seed.At(core.Arc(a)))
	}
	for i := 0; i < e.g.NodeCount(); i++ {
		n := core.Node(i)
		var in, out V
		for _, a := range e.g.InArcs(n) {
			in = e.tol.Add(in, e.flow.At(a))
		}
		for _, a := range e.g.OutArcs(n) {
			out = e.tol.Add(out, e.flow.At(a))
		}
		if n != e.source && in < out && e.tol.Different(in, out) {
			e.state = Uninitialized
			return fmt.Errorf("%w: node %d has inflow %v, outflow %v", ErrInfeasibleFlow, n, in, out)
		}
		e.excess[n] = e.tol.Sub(in, out)
	}
	e.stats = Stats{}
	e.invalidateCuts()
	e.initLevels()

	for _, a := range e.g.OutArcs(e.source) {
		v := e.g.Target(a)
		if v == e.source {
			continue
		}
		if rem := e.residual(a); e.tol.Positive(rem) {
			e.flow.Set(a, e.capacity.At(a))
			e.excess[v] = e.tol.Add(e.excess[v], rem)
			e.excess[e.source] = e.tol.Debit(e.excess[e.source], rem)
		}
	}
	for _, a := range e.g.InArcs(e.source) {
		u := e.g.Source(a)
		if u == e.source {
			continue
		}
		if f := e.flow.At(a); e.tol.Positive(f) {
			e.flow.Set(a, 0)
			e.excess[u] = e.tol.Add(e.excess[u], f)
			e.excess[e.source] = e.tol.Debit(e.excess[e.source], f)
		}
	}
	for i := range e.excess {
		if n := core.Node(i); e.tol.Positive(e.excess[n]) {
			e.activate(n)
		}
	}
	e.state = Initialized

	return nil
}

// Reinit reconciles the current flow with edited capacities on arcs that
// touch the source or the target, keeping levels and excess:
//
//   - an arc into the target carrying more than its new capacity is cut
//     back; the overflow returns to its tail as excess.
//   - an arc out of the source with new spare capacity is saturated when
//     its head is the target or its level is at most level(source)+1, so
//     the labeling stays valid. Other heads cannot reach the target and the
//     extra capacity is irrelevant to the maximum.
//
// The engine returns to Initialized; run StartSecondPhase (or both phases)
// to finish the new solve.
//
// Preconditions on the caller's edits, which Reinit does not repair:
//
//   - an arc out of the source must not drop below its current flow; cut
//     such an arc by reseeding with InitFlow instead.
//   - an arc into the target may only shrink. A raised capacity there can
//     give a residual arc from a node to a target more than one level
//     below, which breaks the labeling.
//   - arcs that touch neither terminal keep their capacities.
//
// Complexity: O(deg(source) + deg(target)).
func (e *Engine[V]) Reinit() error {
	if e.state == Uninitialized {
		return ErrNotInitialized
	}

	var returned, extended int
	for _, a := range e.g.InArcs(e.target) {
		u := e.g.Source(a)
		c, f := e.capacity.At(a), e.flow.At(a)
		if u == e.target || !e.tol.Less(c, f) {
			continue
		}
		over := f - c
		e.flow.Set(a, c)
		e.excess[u] = e.tol.Add(e.excess[u], over)
		e.excess[e.target] = e.tol.Sub(e.excess[e.target], over)
		if e.tol.Positive(e.excess[u]) {
			e.activate(u)
		}
		returned++
	}

	sl := e.level(e.source)
	for _, a := range e.g.OutArcs(e.source) {
		v := e.g.Target(a)
		if v == e.source {
			continue
		}
		rem := e.residual(a)
		if !e.tol.Positive(rem) {
			continue
		}
		if v != e.target && e.level(v) > sl+1 {
			continue
		}
		e.flow.Set(a, e.capacity.At(a))
		e.excess[v] = e.tol.Add(e.excess[v], rem)
		e.excess[e.source] = e.tol.Debit(e.excess[e.source], rem)
		e.activate(v)
		extended++
	}

	e.invalidateCuts()
	e.state = Initialized
	e.log.Debug().Int("returned", returned).Int("extended", extended).Msg("reinit")

	return nil
}

// initLevels runs the elevator init protocol: a BFS from the target over
// reversed residual arcs. Arc u→n is followed while it has spare capacity,
// arc n→v while it carries flow. The source is never labeled by the BFS
// and ends at MaxLevel with every other unreached node.
func (e *Engine[V]) initLevels() {
	ev := e.elev.elev
	for i := range e.reached {
		e.reached[i] = false
	}
	e.reached[e.source] = true
	e.reached[e.target] = true

	ev.InitStart()
	ev.InitAddItem(e.target)
	e.queue = append(e.queue[:0], e.target)
	for len(e.queue) > 0 {
		ev.InitNewLevel()
		e.next = e.next[:0]
		for _, n := range e.queue {
			for _, a := range e.g.InArcs(n) {
				u := e.g.Source(a)
				if !e.reached[u] && e.tol.Positive(e.residual(a)) {
					e.reached[u] = true
					ev.InitAddItem(u)
					e.next = append(e.next, u)
				}
			}
			for _, a := range e.g.OutArcs(n) {
				v := e.g.Target(a)
				if !e.reached[v] && e.tol.Positive(e.flow.At(a)) {
					e.reached[v] = true
					ev.InitAddItem(v)
					e.next = append(e.next, v)
				}
			}
		}
		e.queue, e.next = e.next, e.queue
	}
	ev.InitFinish()
}
