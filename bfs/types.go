// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.WeightedGraph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize BFS execution.
type Options[T comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	OnEnqueue func(v T, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v T, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	// Called for each incident edge of the current vertex.
	FilterEdge func(curr, neighbor T, weight float64) bool

	err error
}

// DefaultOptions returns Options with background context, no-op hooks,
// no depth limit and no filtering.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:        context.Background(),
		OnEnqueue:  func(T, int) {},
		OnDequeue:  func(T, int) {},
		OnVisit:    func(T, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(_, _ T, _ float64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[T comparable](fn func(v T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[T comparable](fn func(v T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T comparable](fn func(v T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips an edge when fn returns false.
// Filtering on weight > 0 walks only the support of the weighted graph.
func WithFilterEdge[T comparable](fn func(curr, neighbor T, weight float64) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the start.
//   - Parent: predecessor in the BFS tree.
type Result[T comparable] struct {
	Order  []T
	Depth  map[T]int
	Parent map[T]T
}

// Reached reports whether v was discovered by the traversal.
func (r *Result[T]) Reached(v T) bool {
	_, ok := r.Depth[v]

	return ok
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result[T]) PathTo(dest T) ([]T, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	path := []T{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
