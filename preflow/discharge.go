package preflow

import "github.com/katalvlaran/preflow/core"

// outcome tells a driver what to do with a node after discharge.
type outcome int

const (
	// drained: excess is gone, deactivate.
	drained outcome = iota
	// parked: the level reached MaxLevel under the first-phase cap; the
	// node keeps its excess and must stay scheduled for the second phase.
	parked
	// stuck: no residual arc leads anywhere below the ceiling; the node is
	// clamped to 2*MaxLevel-1 and deactivated.
	stuck
)

// push moves min(residual, excess[u]) along arc a = u→v.
// Saturating pushes leave a without spare capacity; the others leave u
// without excess.
func (e *Engine[V]) push(u, v core.Node, a core.Arc) error {
	if err := e.canceled(); err != nil {
		return err
	}
	rem := e.residual(a)
	ex := e.excess[u]
	if e.tol.Less(rem, ex) {
		e.excess[u] = e.tol.Sub(ex, rem)
		e.excess[v] = e.tol.Add(e.excess[v], rem)
		e.flow.Set(a, e.capacity.At(a))
	} else {
		e.excess[u] = 0
		e.excess[v] = e.tol.Add(e.excess[v], ex)
		e.flow.Set(a, e.tol.Add(e.flow.At(a), ex))
	}
	e.activate(v)
	e.stats.Pushes++

	return nil
}

// pushBack moves min(flow[a], excess[u]) against arc a = v→u.
func (e *Engine[V]) pushBack(u, v core.Node, a core.Arc) error {
	if err := e.canceled(); err != nil {
		return err
	}
	rem := e.flow.At(a)
	ex := e.excess[u]
	if e.tol.Less(rem, ex) {
		e.excess[u] = e.tol.Sub(ex, rem)
		e.excess[v] = e.tol.Add(e.excess[v], rem)
		e.flow.Set(a, 0)
	} else {
		e.excess[u] = 0
		e.excess[v] = e.tol.Add(e.excess[v], ex)
		e.flow.Set(a, e.tol.Sub(rem, ex))
	}
	e.activate(v)
	e.stats.PushBacks++

	return nil
}

// discharge pushes the excess of u along admissible residual arcs, i.e.
// towards neighbors on a lower level, relabelling u whenever none is left.
//
// Steps:
//  1. Scan out-arcs with spare capacity, then in-arcs carrying flow.
//     Push on every arc whose other end is lower; stop as soon as the
//     excess is gone. Remember the lowest level among the other ends.
//  2. If excess remains, lift u to that lowest level + 1.
//     No residual arc, or a level past 2*MaxLevel-1, clamps u to the
//     ceiling and gives up on it (stuck).
//  3. With limit set, a level at or above MaxLevel parks u.
//  4. Otherwise scan again from the new level.
func (e *Engine[V]) discharge(u core.Node, limit bool) (outcome, error) {
	if !e.tol.Positive(e.excess[u]) {
		return drained, nil
	}
	e.stats.Discharges++
	ev := e.elev.elev
	maxLevel := ev.MaxLevel()
	ceiling := 2*maxLevel - 1

	for {
		lu := ev.Level(u)
		low := ceiling + 1

		for _, a := range e.g.OutArcs(u) {
			v := e.g.Target(a)
			if v == u || !e.tol.Positive(e.residual(a)) {
				continue
			}
			lv := ev.Level(v)
			if lv >= lu {
				if lv < low {
					low = lv
				}
				continue
			}
			if err := e.push(u, v, a); err != nil {
				return drained, err
			}
			if !e.tol.Positive(e.excess[u]) {
				return drained, nil
			}
		}
		for _, a := range e.g.InArcs(u) {
			v := e.g.Source(a)
			if v == u || !e.tol.Positive(e.flow.At(a)) {
				continue
			}
			lv := ev.Level(v)
			if lv >= lu {
				if lv < low {
					low = lv
				}
				continue
			}
			if err := e.pushBack(u, v, a); err != nil {
				return drained, err
			}
			if !e.tol.Positive(e.excess[u]) {
				return drained, nil
			}
		}

		if low >= ceiling {
			ev.Lift(u, ceiling)
			e.log.Trace().Int("node", int(u)).Int("level", ceiling).Msg("relabel clamped")
			return stuck, nil
		}
		ev.Lift(u, low+1)
		e.stats.Relabels++
		if limit && low+1 >= maxLevel {
			return parked, nil
		}
	}
}

// reschedule applies a discharge outcome to the elevator.
func (e *Engine[V]) reschedule(u core.Node, o outcome) {
	ev := e.elev.elev
	if o == parked {
		ev.Activate(u)
		return
	}
	ev.Deactivate(u)
}
