package preflow_test

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/preflow"
)

// ExampleEngine solves the six-node textbook network and lists the source
// side of its minimum cut.
func ExampleEngine() {
	g := core.NewGraph()
	n := g.AddNodes(6)
	arcs := [][2]int{{0, 1}, {1, 2}, {0, 3}, {3, 4}, {2, 5}, {4, 5}, {2, 3}, {4, 1}}
	for _, a := range arcs {
		g.MustAddArc(n[a[0]], n[a[1]])
	}
	caps := core.ArcMapOf([]int{15, 12, 4, 10, 7, 10, 3, 5})

	e, err := preflow.New[int](g, caps, n[0], n[5], preflow.WithStrategy(preflow.HighestLabel))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = e.Run(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("flow value:", e.FlowValue())
	var side []core.Node
	for _, v := range n {
		if e.MinCut(v) {
			side = append(side, v)
		}
	}
	fmt.Println("source side:", side)
	// Output:
	// flow value: 14
	// source side: [0 1 2]
}

// ExampleEngine_InitFlowWith warm-starts a second solve after lowering one
// capacity, lending it the first solve's elevator.
func ExampleEngine_InitFlowWith() {
	g := core.NewGraph()
	n := g.AddNodes(6)
	arcs := [][2]int{{0, 1}, {1, 2}, {0, 3}, {3, 4}, {2, 5}, {4, 5}, {2, 3}, {4, 1}}
	for _, a := range arcs {
		g.MustAddArc(n[a[0]], n[a[1]])
	}
	caps := core.ArcMapOf([]int{15, 12, 4, 10, 7, 10, 3, 5})

	first, _ := preflow.New[int](g, caps, n[0], n[5])
	_ = first.Run()

	caps.Set(4, 6)
	seed := core.NewArcMap[int](g)
	for a := core.Arc(0); int(a) < g.ArcCount(); a++ {
		seed.Set(a, min(first.FlowMap().At(a), caps.At(a)))
	}

	second, _ := preflow.New[int](g, caps, n[0], n[5])
	if err := second.InitFlowWith(seed, first.Elevator()); err != nil {
		fmt.Println(err)
		return
	}
	_ = second.StartFirstPhase()
	_ = second.StartSecondPhase(false)
	fmt.Println("flow value:", second.FlowValue())
	// Output:
	// flow value: 13
}

// ExampleAcyclic runs the DAG fast path on a layered network.
func ExampleAcyclic() {
	g, s, t := core.Layered(3, 2)
	caps := core.NewArcMap[float64](g)
	caps.Fill(1.5)

	a, _ := preflow.NewAcyclic[float64](g, caps, s, t)
	if err := a.ValidateOrder(); err != nil {
		fmt.Println(err)
		return
	}
	_ = a.Run()
	fmt.Println("flow value:", a.FlowValue())
	// Output:
	// flow value: 3
}
