// Package dfs implements depth-first topological ordering of a
// core.Digraph.
//
// TopologicalSort returns the nodes so that every arc goes from an earlier
// to a later node, or ErrCycleDetected. The acyclic max-flow solver needs
// node IDs in exactly that order; Renumber applies an order to a graph
// while keeping arc IDs, so capacity and flow maps stay valid across the
// renumbering.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for states and the recursion stack
package dfs
