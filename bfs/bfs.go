// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[T comparable] struct {
	v     T
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	graph   *core.WeightedGraph[T]
	opts    Options[T]
	ctx     context.Context
	queue   []queueItem[T]
	visited map[T]bool
	res     *Result[T]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS[T comparable](g *core.WeightedGraph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[T], 0, n),
		visited: make(map[T]bool, n),
		res: &Result[T]{
			Order:  make([]T, 0, n),
			Depth:  make(map[T]int, n),
			Parent: make(map[T]T, n),
		},
	}
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent and adds it to the queue.
func (w *walker[T]) enqueue(v T, d int, parent T, hasParent bool) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if hasParent {
		w.res.Parent[v] = parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem[T]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.v, item.depth)

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen neighbor
// in edge creation order.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) error {
	incident, err := w.graph.EdgesOf(item.v)
	if err != nil {
		return fmt.Errorf("bfs: edges of %v: %w", item.v, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range incident {
		nbr, _ := e.Other(item.v)
		if w.visited[nbr] || !w.opts.FilterEdge(item.v, nbr, e.Weight) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v, true)
	}

	return nil
}
