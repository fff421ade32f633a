package preflow

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/elevator"
	"github.com/katalvlaran/preflow/tolerance"
)

// parallelDriver discharges whole frontiers in synchronous rounds.
//
// Round structure:
//  1. push:    every frontier node pushes along arcs admissible under the
//     committed levels. Each arc is admissible from at most one end, so
//     flows have a single writer; a node writes its own excess, and gains
//     of other nodes go to per-worker delta buffers.
//  2. relabel: nodes with excess left stage a new level computed from the
//     committed levels and re-enter the next frontier.
//  3. merge:   local frontiers are concatenated.
//  4. apply:   staged levels become visible, discovered flags are cleared.
//  5. commit:  delta buffers are added to the shared excess, node v being
//     owned by worker v % workers.
//
// A wait on all workers separates consecutive steps, so a round only reads
// state committed by the previous one.
type parallelDriver[V tolerance.Value] struct {
	e       *Engine[V]
	elev    *elevator.Parallel
	workers int

	delta     [][]V
	marked    [][]bool
	touched   [][]core.Node
	relabeled [][]core.Node
	stats     []Stats
	errs      []error
	stop      atomic.Bool
}

func newParallelDriver[V tolerance.Value](e *Engine[V], p *elevator.Parallel) *parallelDriver[V] {
	w := p.Workers()
	n := p.NodeCount()
	d := &parallelDriver[V]{
		e:         e,
		elev:      p,
		workers:   w,
		delta:     make([][]V, w),
		marked:    make([][]bool, w),
		touched:   make([][]core.Node, w),
		relabeled: make([][]core.Node, w),
		stats:     make([]Stats, w),
		errs:      make([]error, w),
	}
	for i := 0; i < w; i++ {
		d.delta[i] = make([]V, n)
		d.marked[i] = make([]bool, n)
	}

	return d
}

func (d *parallelDriver[V]) pushRelabel(limit bool) error {
	p := d.elev
	for _, n := range p.Unpark() {
		p.Activate(n)
	}

	rounds := 0
	for {
		frontier := d.settle(limit)
		if len(frontier) == 0 {
			break
		}
		rounds++
		d.e.stats.Rounds++

		parallelFor(d.workers, len(frontier), func(w, lo, hi int) {
			d.pushAll(w, frontier[lo:hi])
		})
		if err := d.firstErr(); err != nil {
			d.abort(frontier)
			return err
		}
		parallelFor(d.workers, len(frontier), func(w, lo, hi int) {
			d.relabelAll(w, frontier[lo:hi])
		})
		d.mergeStats()
	}
	d.e.log.Debug().Int("rounds", rounds).Bool("limit", limit).Msg("parallel phase done")

	return nil
}

// settle runs steps 3 to 5 of a round and returns the next frontier. In a
// capped phase nodes at or above MaxLevel are parked instead.
func (d *parallelDriver[V]) settle(limit bool) []core.Node {
	p := d.elev
	frontier := p.Concatenate()

	parallelFor(d.workers, len(frontier), func(w, lo, hi int) {
		for _, n := range d.relabeled[w] {
			p.ApplyLevel(n)
		}
		d.relabeled[w] = d.relabeled[w][:0]
		for _, n := range frontier[lo:hi] {
			p.Forget(n)
		}
	})
	// Workers without a frontier chunk may still hold staged levels.
	for w := range d.relabeled {
		for _, n := range d.relabeled[w] {
			p.ApplyLevel(n)
		}
		d.relabeled[w] = d.relabeled[w][:0]
	}

	d.commit()

	if !limit {
		return frontier
	}
	kept := frontier[:0]
	for _, n := range frontier {
		if p.Level(n) >= p.MaxLevel() {
			p.Park(n)
			continue
		}
		kept = append(kept, n)
	}

	return kept
}

// pushAll is the push step for one worker's share of the frontier.
func (d *parallelDriver[V]) pushAll(w int, nodes []core.Node) {
	e, p := d.e, d.elev
	g, tol := e.g, e.tol

	for _, u := range nodes {
		if d.stop.Load() {
			return
		}
		ex := e.excess[u]
		if !tol.Positive(ex) {
			continue
		}
		d.stats[w].Discharges++
		lu := p.Level(u)

		for _, a := range g.OutArcs(u) {
			v := g.Target(a)
			if v == u || p.Level(v) >= lu {
				continue
			}
			rem := e.residual(a)
			if !tol.Positive(rem) {
				continue
			}
			if err := e.canceled(); err != nil {
				d.fail(w, err)
				e.excess[u] = ex
				return
			}
			amt := ex
			if tol.Less(rem, ex) {
				amt = rem
				e.flow.Set(a, e.capacity.At(a))
			} else {
				e.flow.Set(a, tol.Add(e.flow.At(a), ex))
			}
			ex = tol.Sub(ex, amt)
			d.gain(w, v, amt)
			d.stats[w].Pushes++
			if !tol.Positive(ex) {
				break
			}
		}
		if tol.Positive(ex) {
			for _, a := range g.InArcs(u) {
				v := g.Source(a)
				if v == u || p.Level(v) >= lu {
					continue
				}
				f := e.flow.At(a)
				if !tol.Positive(f) {
					continue
				}
				if err := e.canceled(); err != nil {
					d.fail(w, err)
					e.excess[u] = ex
					return
				}
				amt := ex
				if tol.Less(f, ex) {
					amt = f
					e.flow.Set(a, 0)
				} else {
					e.flow.Set(a, tol.Sub(f, ex))
				}
				ex = tol.Sub(ex, amt)
				d.gain(w, v, amt)
				d.stats[w].PushBacks++
				if !tol.Positive(ex) {
					break
				}
			}
		}
		e.excess[u] = ex
	}
}

// relabelAll is the relabel step for one worker's share of the frontier.
// Every admissible arc was used up by the push step, so the lowest
// residual neighbor is at or above the node's own level.
// Capped nodes re-enter the frontier as well and are parked when it settles.
func (d *parallelDriver[V]) relabelAll(w int, nodes []core.Node) {
	e, p := d.e, d.elev
	g, tol := e.g, e.tol
	ceiling := 2*p.MaxLevel() - 1

	for _, u := range nodes {
		if !tol.Positive(e.excess[u]) {
			continue
		}
		low := ceiling + 1
		for _, a := range g.OutArcs(u) {
			if v := g.Target(a); v != u && tol.Positive(e.residual(a)) && p.Level(v) < low {
				low = p.Level(v)
			}
		}
		for _, a := range g.InArcs(u) {
			if v := g.Source(a); v != u && tol.Positive(e.flow.At(a)) && p.Level(v) < low {
				low = p.Level(v)
			}
		}

		d.relabeled[w] = append(d.relabeled[w], u)
		if low >= ceiling {
			p.StageLevel(u, ceiling)
			continue
		}
		p.StageLevel(u, low+1)
		d.stats[w].Relabels++
		p.ActivateLocal(u, w)
	}
}

// gain stages amt for v in worker w's buffer and schedules v.
func (d *parallelDriver[V]) gain(w int, v core.Node, amt V) {
	if !d.marked[w][v] {
		d.marked[w][v] = true
		d.touched[w] = append(d.touched[w], v)
	}
	d.delta[w][v] = d.e.tol.Add(d.delta[w][v], amt)
	if v != d.e.source && v != d.e.target {
		d.elev.ActivateLocal(v, w)
	}
}

// commit adds every staged gain to the shared excess.
func (d *parallelDriver[V]) commit() {
	e := d.e
	parallelFor(d.workers, d.workers, func(part, _, _ int) {
		for w := range d.touched {
			for _, v := range d.touched[w] {
				if int(v)%d.workers != part {
					continue
				}
				e.excess[v] = e.tol.Add(e.excess[v], d.delta[w][v])
				d.delta[w][v] = 0
				d.marked[w][v] = false
			}
		}
	})
	for w := range d.touched {
		d.touched[w] = d.touched[w][:0]
	}
}

// abort commits what the interrupted push step staged and keeps every node
// with excess scheduled, so a later call can resume from a valid preflow.
func (d *parallelDriver[V]) abort(frontier []core.Node) {
	d.commit()
	for _, n := range frontier {
		if d.e.tol.Positive(d.e.excess[n]) {
			d.elev.Activate(n)
		}
	}
	d.mergeStats()
	d.stop.Store(false)
	for w := range d.errs {
		d.errs[w] = nil
	}
}

func (d *parallelDriver[V]) fail(w int, err error) {
	d.errs[w] = err
	d.stop.Store(true)
}

func (d *parallelDriver[V]) firstErr() error {
	for _, err := range d.errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *parallelDriver[V]) mergeStats() {
	for w := range d.stats {
		d.e.stats.add(d.stats[w])
		d.stats[w] = Stats{}
	}
}

// parallelFor splits [0, n) into one contiguous chunk per worker and runs
// fn on each chunk in its own goroutine. It returns once every chunk is
// done. With a single worker fn runs inline.
func parallelFor(workers, n int, fn func(w, lo, hi int)) {
	if workers <= 1 || n <= 1 {
		fn(0, 0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			fn(w, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()
}
