package preflow

import "github.com/katalvlaran/preflow/elevator"

// handle records who owns the engine's elevator.
//
// An owned elevator was created by the engine and never escapes it: callers
// asking for it get a Clone. A borrowed elevator was injected through
// InitFlowWith and stays the caller's; it is handed back as-is so the caller
// can reuse it for the next solve.
type handle struct {
	elev     elevator.Elevator
	borrowed bool
}

func ownedHandle(e elevator.Elevator) handle { return handle{elev: e} }

func borrowedHandle(e elevator.Elevator) handle { return handle{elev: e, borrowed: true} }

// share returns the elevator as seen from outside the engine.
func (h handle) share() elevator.Elevator {
	if h.elev == nil {
		return nil
	}
	if h.borrowed {
		return h.elev
	}

	return h.elev.Clone()
}
