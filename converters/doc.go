// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between core.WeightedGraph and
// gonum's graph packages (gonum.org/v1/gonum/graph).
//
// ToGonum numbers vertices 0..n-1 in insertion order and returns the reverse
// mapping; FromGonum rebuilds a core graph keyed by gonum node IDs. Use them to
// hand a graph to gonum's algorithms (e.g. topo.ConnectedComponents) and back.
package converters
