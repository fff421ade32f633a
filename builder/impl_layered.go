// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_layered.go - implementation of Layered(layers, width) constructor.
//
// Canonical model:
//   - One entry node, `layers` rows of `width` nodes, one exit node.
//   - Entry feeds every node of row 0, consecutive rows are complete
//     bipartite, every node of the last row feeds the exit.
//   - Nodes are appended in topological order, so the network is a DAG with
//     Source(a) < Target(a) for every arc (usable by the acyclic solver).
//
// Contract:
//   - layers ≥ 1 and width ≥ 1 (else ErrTooFewVertices).
//   - Capacity of every arc is cfg.capacityFn(cfg.rng); a nil RNG is fine.
//
// Complexity:
//   - Time: O(layers·width²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

const methodLayered = "Layered"

// Layered returns a Constructor for the scalable layered benchmark network.
func Layered(layers, width int) Constructor {
	return func(nw *Network, cfg builderConfig) error {
		if layers < 1 || width < 1 {
			return fmt.Errorf("%s: layers=%d width=%d: %w", methodLayered, layers, width, ErrTooFewVertices)
		}

		g := nw.Graph
		entry := g.AddNode()
		rows := make([][]core.Node, layers)
		for i := range rows {
			rows[i] = g.AddNodes(width)
		}
		exit := g.AddNode()

		link := func(u, v core.Node) error {
			c := cfg.capacityFn(cfg.rng)
			if err := checkCapacity(methodLayered, c); err != nil {
				return err
			}
			if err := nw.addArc(u, v, c); err != nil {
				return fmt.Errorf("%s: AddArc(%d→%d): %w", methodLayered, u, v, err)
			}

			return nil
		}

		for _, v := range rows[0] {
			if err := link(entry, v); err != nil {
				return err
			}
		}
		for i := 0; i+1 < layers; i++ {
			for _, u := range rows[i] {
				for _, v := range rows[i+1] {
					if err := link(u, v); err != nil {
						return err
					}
				}
			}
		}
		for _, u := range rows[layers-1] {
			if err := link(u, exit); err != nil {
				return err
			}
		}

		return nil
	}
}
