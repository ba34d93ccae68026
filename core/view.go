// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Notes:
//   - Views do NOT mutate the input graph.
//   - InducedSubgraph keeps only accepted vertices and edges with both endpoints kept.

package core

// InducedSubgraph returns a new graph over the vertices for which keep returns true,
// holding every edge whose two endpoints are kept. Vertex order and edge IDs are
// preserved. A nil keep selects every vertex.
//
// Complexity: O(V + E). Concurrency: read lock on g only.
func (g *WeightedGraph[T]) InducedSubgraph(keep func(T) bool) *WeightedGraph[T] {
	if keep == nil {
		keep = func(T) bool { return true }
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.subgraphLocked(keep, true)
}

// CrossingEdges returns the edges with exactly one endpoint accepted by side,
// ordered by creation. These are the edges cut by the partition (side, ¬side).
//
// Complexity: O(E log E).
func (g *WeightedGraph[T]) CrossingEdges(side func(T) bool) []Edge[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[T], 0)
	for _, e := range g.edges {
		if side(e.From) != side(e.To) {
			out = append(out, *e)
		}
	}
	sortEdges(out)

	return out
}
