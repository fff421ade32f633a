// Package maxflow is the root of a push-relabel maximum-flow / minimum-cut
// toolkit over dense, integer-identified directed graphs.
//
// What is in the box?
//
//	A generic engine over any integer or floating capacity type that brings
//	together:
//		• Push-relabel with pluggable schedules: relabel-to-front, FIFO,
//		  highest-label and a round-synchronous parallel elevator
//		• Two-phase solving: a maximum preflow and the minimum cut first,
//		  a full flow on demand
//		• Warm starts: seed flows, shared elevators and Reinit after
//		  capacity edits on terminal arcs
//		• A greedy fast path for DAGs in topological ID order
//		• Augmenting-path baselines: Ford–Fulkerson, Edmonds–Karp, Dinic
//		• LGF / DIMACS input, generated benchmark networks, Prometheus metrics
//
// Subpackages:
//
//	core/        Digraph interface, the Graph container, arc and node maps
//	tolerance/   epsilon comparisons and the infinity sentinel per value type
//	elevator/    level/active bookkeeping for each schedule
//	preflow/     the push-relabel engine and the acyclic solver
//	flow/        augmenting-path baselines with both extreme cuts
//	bfs/, dfs/   residual reachability, topological order and renumbering
//	builder/     RandomSparse, Layered and Gaussian network generators
//	lgf/         LEMON Graph Format reader/writer, DIMACS reader
//	metrics/     Prometheus counters and histograms per solve
//	cmd/         lgf-compute and lgf-generate
//
// Quick start:
//
//	g := core.NewGraph()
//	s, a, t := g.AddNode(), g.AddNode(), g.AddNode()
//	capacity := core.ArcMapOf([]int{3, 2})
//	g.MustAddArc(s, a)
//	g.MustAddArc(a, t)
//	e, _ := preflow.New[int](g, capacity, s, t)
//	_ = e.Run()
//	fmt.Println(e.FlowValue()) // 2
package maxflow
