// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// api.go - public entry point that composes network constructors.
//
// Contract:
//   - BuildNetwork creates an empty Network, resolves options once and runs
//     every Constructor in order over the same Network.
//   - Constructors append nodes after the ones already present, so several
//     constructors can be chained into one network.
//   - After the last constructor the source is node 0 and the target is the
//     last node, matching the "@attributes source 0 / target N-1" layout of
//     generated benchmark files.

package builder

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// Network is a generated flow network: a graph, one capacity per arc and
// the terminal pair.
type Network struct {
	Graph    *core.Graph
	Capacity *core.ArcMap[float64]
	Source   core.Node
	Target   core.Node

	capacities []float64 // staged until BuildNetwork finishes
}

// addArc appends u→v with capacity c, keeping Capacity aligned with the
// graph's arc IDs.
func (nw *Network) addArc(u, v core.Node, c float64) error {
	if _, err := nw.Graph.AddArc(u, v); err != nil {
		return err
	}
	nw.capacities = append(nw.capacities, c)

	return nil
}

// Constructor appends one family of nodes and arcs to nw.
type Constructor func(nw *Network, cfg builderConfig) error

// BuildNetwork runs cons in order and returns the finished network.
// At least two nodes must exist afterwards (else ErrTooFewVertices).
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*Network, error) {
	nw := &Network{Graph: core.NewGraph()}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(nw, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	n := nw.Graph.NodeCount()
	if n < 2 {
		return nil, fmt.Errorf("BuildNetwork: %d nodes: %w", n, ErrTooFewVertices)
	}
	nw.Capacity = core.ArcMapOf(nw.capacities)
	nw.capacities = nil
	nw.Source, nw.Target = 0, core.Node(n-1)

	return nw, nil
}
