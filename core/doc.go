// SPDX-License-Identifier: MIT

// Package core provides a generic, thread-safe, undirected weighted graph.
//
// WeightedGraph[T] stores vertices of any comparable label type T and at most one
// weighted edge per unordered vertex pair:
//
//	adjacency[a][b] = *Edge   (mirrored as adjacency[b][a])
//	edges[edgeID]   = *Edge   ("e1", "e2", ... in creation order)
//
// Edge identity is symmetric: AddEdge(a, b, w) and AddEdge(b, a, w) describe the same
// edge. What happens when a pair is added twice is decided by ParallelPolicy
// (WithParallelEdges); the default ParallelKeep leaves the first edge in place, so
// repeating an AddEdge call is idempotent.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v T) error                    // O(1), idempotent
//	HasVertex(v T) bool                     // O(1)
//	RemoveVertex(v T) error                 // O(deg(v)), ErrVertexNotFound if absent
//
//	// Edge lifecycle
//	AddEdge(a, b T, w float64) error        // O(1), ErrInvalidEdge on loops/undefined ends
//	RemoveEdge(a, b T) bool                 // O(1), false if absent
//	HasEdge(a, b T) bool                    // O(1)
//	Edge(a, b T) (Edge[T], bool)            // O(1)
//
//	// Query (copies, deterministic order)
//	Vertices() []T                          // insertion order
//	Edges() []Edge[T]                       // creation order
//	EdgesOf(v T) ([]Edge[T], error)         // creation order
//	Neighbors(v T) ([]T, error)             // insertion order
//	VertexCount(), EdgeCount() int
//	Degree(v), WeightedDegree(v), TotalWeight(), Stats()
//
//	// Views & cloning
//	Clone(), CloneEmpty(), InducedSubgraph(keep), CrossingEdges(side), Clear()
//
// Undefined vertices: a nil interface, a Nilable reporting IsNil, or "".
//
// Errors:
//
//	ErrInvalidEdge     – parent of ErrLoopNotAllowed and ErrUndefinedVertex
//	ErrLoopNotAllowed  – AddEdge(v, v, w)
//	ErrUndefinedVertex – nil/empty label
//	ErrVertexNotFound  – missing vertex
//	ErrBadWeight       – NaN or ±Inf weight
//
// A single sync.RWMutex guards each graph, so individual calls are safe from any
// goroutine. Algorithms that read a graph through several calls (for example
// stoerwagner.New) still require that nobody mutates it meanwhile.
package core
