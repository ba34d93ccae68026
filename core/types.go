// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Edge/WeightedGraph types, options and the constructor.
// Policy:
//   - Sentinels only; context is attached with fmt.Errorf("...: %w").
//   - WeightedGraph storage is guarded by a single RWMutex.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge is the parent class of every edge-construction failure.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrLoopNotAllowed indicates a self-loop (from == to). Matches ErrInvalidEdge.
	ErrLoopNotAllowed = fmt.Errorf("%w: self-loop not allowed", ErrInvalidEdge)

	// ErrUndefinedVertex indicates a nil or empty vertex label. Matches ErrInvalidEdge.
	ErrUndefinedVertex = fmt.Errorf("%w: undefined vertex", ErrInvalidEdge)

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be a finite number")
)

// Nilable lets pointer-backed vertex labels report nil-ness without reflection.
type Nilable interface {
	IsNil() bool
}

// Edge is an undirected weighted connection between two distinct vertices.
//
// {From,To} and {To,From} denote the same edge; use Same to compare.
// Edges returned by WeightedGraph are copies and never alias internal storage.
type Edge[T comparable] struct {
	// ID is a stable per-graph identifier ("e1", "e2", ...).
	ID string

	// From and To are the endpoints; From is the one added to the graph first,
	// so AddEdge(a,b,w) and AddEdge(b,a,w) store identical edges.
	From, To T

	// Weight is the edge weight (cost or capacity).
	Weight float64
}

// ParallelPolicy decides what AddEdge does when the unordered pair already has an edge.
type ParallelPolicy int

const (
	// ParallelKeep keeps the stored edge untouched (first write wins).
	ParallelKeep ParallelPolicy = iota

	// ParallelReplace overwrites the stored weight (last write wins).
	ParallelReplace

	// ParallelSum adds the new weight to the stored one (multigraph semantics).
	ParallelSum

	// ParallelMax keeps the larger of the two weights.
	ParallelMax
)

// String implements fmt.Stringer.
func (p ParallelPolicy) String() string {
	switch p {
	case ParallelKeep:
		return "keep"
	case ParallelReplace:
		return "replace"
	case ParallelSum:
		return "sum"
	case ParallelMax:
		return "max"
	}

	return fmt.Sprintf("ParallelPolicy(%d)", int(p))
}

// GraphOption configures a WeightedGraph at construction time.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	parallel ParallelPolicy
}

// WithParallelEdges selects how repeated edges between one pair are merged.
// Panics on an unknown policy (option constructors validate eagerly).
func WithParallelEdges(policy ParallelPolicy) GraphOption {
	if policy < ParallelKeep || policy > ParallelMax {
		panic(fmt.Sprintf("core: WithParallelEdges(%d): unknown policy", int(policy)))
	}

	return func(cfg *graphConfig) { cfg.parallel = policy }
}

// WeightedGraph is an in-memory undirected weighted graph over vertex labels of type T.
//
// Storage:
//
//	adjacency[a][b] = *edge   (mirrored as adjacency[b][a])
//	edges[edgeID]   = *edge
//	seq[v]          = insertion sequence of v (deterministic enumeration)
//
// At most one edge is stored per unordered pair; see ParallelPolicy.
type WeightedGraph[T comparable] struct {
	mu sync.RWMutex

	parallel ParallelPolicy

	nextVertexSeq uint64
	edgeSeq       uint64

	seq       map[T]uint64
	adjacency map[T]map[T]*Edge[T]
	edges     map[string]*Edge[T]
}

// NewWeightedGraph creates an empty graph. Default policy is ParallelKeep.
// Complexity: O(len(opts)).
func NewWeightedGraph[T comparable](opts ...GraphOption) *WeightedGraph[T] {
	cfg := graphConfig{parallel: ParallelKeep}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &WeightedGraph[T]{
		parallel:  cfg.parallel,
		seq:       make(map[T]uint64),
		adjacency: make(map[T]map[T]*Edge[T]),
		edges:     make(map[string]*Edge[T]),
	}
}
