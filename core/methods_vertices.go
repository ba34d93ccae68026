// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels in insertion order.
//
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.

package core

import (
	"reflect"
	"sort"
)

// IsUndefined reports whether v cannot be used as a vertex label:
// a nil interface, the empty string, a Nilable reporting nil, or a nil
// pointer, map, chan, func or slice.
//
// Complexity: O(1). Nilable labels skip reflection.
func IsUndefined[T comparable](v T) bool {
	switch x := any(v).(type) {
	case nil:
		return true
	case string:
		return x == ""
	case Nilable:
		return x.IsNil()
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}

	return false
}

// AddVertex inserts v if missing (idempotent).
//
// Implementation:
//   - Stage 1: Reject undefined labels (ErrUndefinedVertex).
//   - Stage 2: Under the write lock, register v with an empty adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *WeightedGraph[T]) AddVertex(v T) error {
	if IsUndefined(v) {
		return ErrUndefinedVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(v)

	return nil
}

// addVertexLocked registers v if absent. Caller holds mu for writing.
func (g *WeightedGraph[T]) addVertexLocked(v T) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.nextVertexSeq++
	g.seq[v] = g.nextVertexSeq
	g.adjacency[v] = make(map[T]*Edge[T])
}

// HasVertex reports whether v is present.
// Complexity: O(1).
func (g *WeightedGraph[T]) HasVertex(v T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// RemoveVertex deletes v and every edge incident to it.
//
// Implementation:
//   - Stage 1: Verify presence (ErrVertexNotFound).
//   - Stage 2: For each neighbor u, drop adjacency[u][v] and the shared edge record.
//   - Stage 3: Drop v's own bucket and sequence entry.
//
// Complexity: O(deg(v)).
func (g *WeightedGraph[T]) RemoveVertex(v T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	bucket, ok := g.adjacency[v]
	if !ok {
		return ErrVertexNotFound
	}
	for u, e := range bucket {
		delete(g.adjacency[u], v)
		delete(g.edges, e.ID)
	}
	delete(g.adjacency, v)
	delete(g.seq, v)

	return nil
}

// Vertices returns a copy of all vertex labels in insertion order.
// Complexity: O(V log V).
func (g *WeightedGraph[T]) Vertices() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	g.sortVerticesLocked(out)

	return out
}

// sortVerticesLocked orders vs by insertion sequence. Caller holds mu.
func (g *WeightedGraph[T]) sortVerticesLocked(vs []T) {
	sort.Slice(vs, func(i, j int) bool { return g.seq[vs[i]] < g.seq[vs[j]] })
}

// VertexCount returns |V|.
func (g *WeightedGraph[T]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Neighbors returns the labels adjacent to v, in insertion order.
//
// Errors:
//   - ErrVertexNotFound if v is absent.
//
// Complexity: O(d log d).
func (g *WeightedGraph[T]) Neighbors(v T) ([]T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]T, 0, len(bucket))
	for u := range bucket {
		out = append(out, u)
	}
	g.sortVerticesLocked(out)

	return out, nil
}

// Degree returns the number of edges incident to v.
func (g *WeightedGraph[T]) Degree(v T) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// WeightedDegree returns the sum of weights of edges incident to v,
// which is the weight of the cut isolating v.
func (g *WeightedGraph[T]) WeightedDegree(v T) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[v]
	if !ok {
		return 0, ErrVertexNotFound
	}
	var sum float64
	for _, e := range bucket {
		sum += e.Weight
	}

	return sum, nil
}
