// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.WeightedGraph,
// returning hop distances, parent links and visit order, plus connected
// components built on top of it.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start
//   - Parent: vertex → predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - Edge filtering via WithFilterEdge (sees both endpoints and the weight).
//   - MaxDepth limit (d>0) or "no limit" (d==0).
//   - Components / Connected: the connectivity precondition used by stoerwagner.
//
// Weights are ignored by the traversal itself; every edge counts as one hop.
//
// Determinism
//
//	core.EdgesOf returns edges in creation order and BFS enqueues neighbors in that
//	order, so the visit sequence is reproducible. Components are ordered by the
//	insertion order of their first vertex.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ)  (incident edges are sorted per vertex)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	)
//	ok, err := bfs.Connected(g)
//	comps, err := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
