package preflow

import (
	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/elevator"
	"github.com/katalvlaran/preflow/tolerance"
)

// fifoDriver discharges nodes in activation order.
type fifoDriver[V tolerance.Value] struct {
	e    *Engine[V]
	elev *elevator.FIFO
}

func (d *fifoDriver[V]) pushRelabel(limit bool) error {
	for {
		u, ok := d.elev.Front(limit)
		if !ok {
			return nil
		}
		o, err := d.e.discharge(u, limit)
		if err != nil {
			// Keep u scheduled so a later call can resume.
			d.elev.Activate(u)
			return err
		}
		d.e.reschedule(u, o)
	}
}

// highestLabelDriver always discharges a node of the highest level.
type highestLabelDriver[V tolerance.Value] struct {
	e    *Engine[V]
	elev *elevator.HighestLabel
}

func (d *highestLabelDriver[V]) pushRelabel(limit bool) error {
	for {
		u, ok := d.elev.Highest(limit)
		if !ok {
			return nil
		}
		o, err := d.e.discharge(u, limit)
		if err != nil {
			d.elev.Activate(u)
			return err
		}
		d.e.reschedule(u, o)
	}
}

// relabelToFrontDriver sweeps the node list. A node whose level rose
// during its discharge moves to the front and the sweep restarts there;
// the loop ends after a full sweep that discharged nothing.
type relabelToFrontDriver[V tolerance.Value] struct {
	e    *Engine[V]
	elev *elevator.RelabelToFront
}

func (d *relabelToFrontDriver[V]) pushRelabel(limit bool) error {
	e, r := d.e, d.elev
	maxLevel := r.MaxLevel()

	for {
		progressed := false
		for u := r.Front(); u != core.InvalidNode; {
			if !r.Active(u) || (limit && r.Level(u) >= maxLevel) {
				u = r.Next(u)
				continue
			}
			before := r.Level(u)
			o, err := e.discharge(u, limit)
			if err != nil {
				return err
			}
			progressed = true
			if o != parked {
				r.Deactivate(u)
			}
			if r.Level(u) > before {
				r.MoveToFront(u)
				u = r.Front()
				continue
			}
			u = r.Next(u)
		}
		if !progressed {
			return nil
		}
	}
}
