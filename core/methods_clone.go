// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clones keep vertex insertion order, edge IDs and the edge ID counter, so future
//     AddEdge calls on a clone never collide with copied edges.
// Concurrency:
//   - Read lock on the source while snapshotting.

package core

// CloneEmpty returns a graph with the same policy and vertices but no edges.
// Complexity: O(V).
func (g *WeightedGraph[T]) CloneEmpty() *WeightedGraph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.subgraphLocked(func(T) bool { return true }, false)
}

// Clone returns a deep copy: policy, vertices, edges and adjacency.
// Complexity: O(V + E).
func (g *WeightedGraph[T]) Clone() *WeightedGraph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.subgraphLocked(func(T) bool { return true }, true)
}

// Clear removes every vertex and edge but keeps the parallel-edge policy.
// Counters restart, so IDs are reused after Clear.
func (g *WeightedGraph[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextVertexSeq = 0
	g.edgeSeq = 0
	g.seq = make(map[T]uint64)
	g.adjacency = make(map[T]map[T]*Edge[T])
	g.edges = make(map[string]*Edge[T])
}

// subgraphLocked copies the vertices accepted by keep and, if withEdges is set,
// every edge whose endpoints are both kept. Caller holds mu for reading.
func (g *WeightedGraph[T]) subgraphLocked(keep func(T) bool, withEdges bool) *WeightedGraph[T] {
	out := &WeightedGraph[T]{
		parallel:      g.parallel,
		nextVertexSeq: g.nextVertexSeq,
		edgeSeq:       g.edgeSeq,
		seq:           make(map[T]uint64, len(g.seq)),
		adjacency:     make(map[T]map[T]*Edge[T], len(g.adjacency)),
		edges:         make(map[string]*Edge[T]),
	}
	for v, s := range g.seq {
		if !keep(v) {
			continue
		}
		out.seq[v] = s
		out.adjacency[v] = make(map[T]*Edge[T])
	}
	if !withEdges {
		return out
	}
	for id, e := range g.edges {
		if _, ok := out.adjacency[e.From]; !ok {
			continue
		}
		if _, ok := out.adjacency[e.To]; !ok {
			continue
		}
		ne := &Edge[T]{ID: id, From: e.From, To: e.To, Weight: e.Weight}
		out.edges[id] = ne
		out.adjacency[e.From][e.To] = ne
		out.adjacency[e.To][e.From] = ne
	}

	return out
}
