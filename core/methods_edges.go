// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgesOf/EdgeCount,
//       plus the Edge value helpers and nextEdgeID().
// Determinism:
//   - Edges() and EdgesOf() return edges sorted by creation order ("e1" < "e2" < ...).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix keeps textual edge IDs stable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// Same reports whether e and o join the same unordered pair of vertices.
func (e Edge[T]) Same(o Edge[T]) bool {
	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// Has reports whether v is an endpoint of e.
func (e Edge[T]) Has(v T) bool {
	return e.From == v || e.To == v
}

// Other returns the endpoint opposite to v.
//
// Errors:
//   - ErrVertexNotFound if v is not an endpoint of e.
func (e Edge[T]) Other(v T) (T, error) {
	switch v {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	}
	var zero T

	return zero, fmt.Errorf("core: %v is not on edge %v: %w", v, e, ErrVertexNotFound)
}

// String renders the edge as "Edge[from -- to, weight]".
func (e Edge[T]) String() string {
	return fmt.Sprintf("Edge[%v -- %v, %g]", e.From, e.To, e.Weight)
}

// AddEdge records the undirected edge {from,to} with weight w, adding missing endpoints.
//
// Steps:
//  1. Validate endpoints (ErrUndefinedVertex, ErrLoopNotAllowed) and weight (ErrBadWeight).
//  2. Lock, ensure both endpoints exist.
//  3. If the pair already has an edge, merge by the graph's ParallelPolicy and return.
//  4. Otherwise orient the edge from the earlier-inserted endpoint, allocate the next ID
//     and link adjacency[from][to] and adjacency[to][from].
//
// A failed call leaves the graph untouched. Complexity: O(1) amortized.
func (g *WeightedGraph[T]) AddEdge(from, to T, w float64) error {
	if IsUndefined(from) || IsUndefined(to) {
		return ErrUndefinedVertex
	}
	if from == to {
		return fmt.Errorf("%v: %w", from, ErrLoopNotAllowed)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%v--%v weight %g: %w", from, to, w, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if e, ok := g.adjacency[from][to]; ok {
		switch g.parallel {
		case ParallelReplace:
			e.Weight = w
		case ParallelSum:
			e.Weight += w
		case ParallelMax:
			e.Weight = math.Max(e.Weight, w)
		}

		return nil
	}

	// orient by insertion order so both argument orders store the same edge
	if g.seq[to] < g.seq[from] {
		from, to = to, from
	}
	e := &Edge[T]{ID: g.nextEdgeID(), From: from, To: to, Weight: w}
	g.edges[e.ID] = e
	g.adjacency[from][to] = e
	g.adjacency[to][from] = e

	return nil
}

// RemoveEdge deletes the edge {from,to}. Returns false if no such edge exists.
// Complexity: O(1).
func (g *WeightedGraph[T]) RemoveEdge(from, to T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return false
	}
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	delete(g.edges, e.ID)

	return true
}

// HasEdge reports whether the unordered pair {a,b} is connected.
func (g *WeightedGraph[T]) HasEdge(a, b T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edge returns a copy of the edge {a,b}, if present.
func (g *WeightedGraph[T]) Edge(a, b T) (Edge[T], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.adjacency[a][b]
	if !ok {
		return Edge[T]{}, false
	}

	return *e, true
}

// Edges returns copies of all edges ordered by creation.
// Complexity: O(E log E).
func (g *WeightedGraph[T]) Edges() []Edge[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[T], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sortEdges(out)

	return out
}

// EdgesOf returns copies of the edges incident to v, ordered by creation.
//
// Errors:
//   - ErrVertexNotFound if v is absent.
//
// Complexity: O(d log d).
func (g *WeightedGraph[T]) EdgesOf(v T) ([]Edge[T], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge[T], 0, len(bucket))
	for _, e := range bucket {
		out = append(out, *e)
	}
	sortEdges(out)

	return out, nil
}

// EdgeCount returns |E|.
func (g *WeightedGraph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
func (g *WeightedGraph[T]) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// nextEdgeID returns the next textual edge ID. Caller holds mu for writing.
func (g *WeightedGraph[T]) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}

// sortEdges orders edges by numeric ID suffix ("e2" before "e10").
func sortEdges[T comparable](es []Edge[T]) {
	sort.Slice(es, func(i, j int) bool {
		if len(es[i].ID) != len(es[j].ID) {
			return len(es[i].ID) < len(es[j].ID)
		}
		return es[i].ID < es[j].ID
	})
}
