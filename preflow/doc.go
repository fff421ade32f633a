// Package preflow computes maximum flows and minimum cuts with the
// push-relabel method.
//
// An Engine owns a preflow (per-arc flow, per-node excess) and a valid
// labeling kept by an elevator. The solve runs in two phases:
//
//	StartFirstPhase   discharge nodes below MaxLevel = node count; the
//	                  target's excess is then the maximum flow value.
//	StartSecondPhase  discharge everything; leftover excess drains back to
//	                  the source and the preflow becomes a flow.
//
// Run = Init + both phases. RunMinCut = Init + first phase, which is enough
// for FlowValue and MinCut.
//
// Strategies (WithStrategy) differ only in which active node is discharged
// next:
//
//	RelabelToFront (default)  ordered list sweep, lifted nodes move first
//	FIFO                      arrival order
//	HighestLabel              highest level first
//	Parallel                  synchronous rounds over whole frontiers
//
// Parametric use: after editing capacities on arcs at the source or the
// target, Reinit reconciles the flow without discarding levels; a second
// phase then finishes the new solve. InitFlow and InitFlowWith restart from
// an arbitrary feasible flow; InitFlowWith also lends the engine an
// elevator, which Elevator hands back as the same instance.
//
// Numeric comparisons go through a tolerance.Tolerance. Capacities may be
// tolerance.Infinity; residuals of such arcs stay unbounded.
//
// Cancellation: the context from WithContext is polled before every push.
// A canceled solve returns an error matching both ErrCanceled and the
// context's error; flow and excess stay a valid preflow and the interrupted
// phase may be called again.
//
// Acyclic is a separate relabel-free solver for DAGs numbered in
// topological order.
package preflow
