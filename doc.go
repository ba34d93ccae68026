// SPDX-License-Identifier: MIT

// Package mincut computes global minimum cuts of undirected weighted graphs.
//
// The module is organized as small, focused subpackages:
//
//	core/        - thread-safe generic WeightedGraph[T]: vertices, edges, views
//	stoerwagner/ - Stoer-Wagner global minimum cut (MinCut result, phase hooks)
//	bfs/         - breadth-first traversal and connected components
//	flow/        - Edmonds-Karp max-flow / min s-t cut, used as a cross-check
//	builder/     - deterministic topology constructors for tests and benchmarks
//	loader/      - adjacency text and HCL graph readers, built-in sample graphs
//	converters/  - adapters to and from gonum graphs
//	cmd/mincut   - command-line driver
//
// Quick example:
//
//	    A───B
//	    │ ╲ │      A─C has weight 5, every other edge weight 1.
//	    D───C
//
//	g := core.NewWeightedGraph[string]()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 1)
//	_ = g.AddEdge("C", "D", 1)
//	_ = g.AddEdge("D", "A", 1)
//	_ = g.AddEdge("A", "C", 5)
//	mc, _ := stoerwagner.New(g)
//	mc.BestWeight() // 2
//	mc.CutSet()     // [D]
package mincut
