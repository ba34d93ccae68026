// SPDX-License-Identifier: MIT

// Package flow implements maximum flow and minimum s-t cuts on undirected
// weighted graphs (*core.WeightedGraph[T]), where every edge weight is a
// capacity usable in either direction.
//
// Algorithms:
//
//   - EdmondsKarp / MinSTCut
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V + E) for the residual network.
//
//   - MinSTCut also returns the source side (vertices reachable in the final
//     residual network) and the crossing edges of the original graph.
//
//   - GlobalMinCut
//
//   - Method: V-1 MinSTCut runs from a fixed source.
//
//   - Used as an independent oracle for the stoerwagner package.
//
// Options (FlowOptions, nil for defaults):
//
//	Epsilon   float64                       // capacities ≤ Epsilon are zero (default 1e-9)
//	OnAugment func(bottleneck float64, hops int)
//
// Errors:
//
//	ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
//	ErrTooFewVertices, EdgeError (negative capacity), ctx.Err().
//
// Determinism: residual adjacency follows edge creation order, so augmenting
// paths and results are reproducible.
package flow
