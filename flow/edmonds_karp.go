// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/mincut/core"
)

// EdmondsKarp computes the maximum flow between source and sink of an
// undirected weighted graph, treating every edge weight as a capacity
// available in both directions.
//
// Options (nil uses defaults):
//   - Epsilon:   capacities ≤ Epsilon treated as zero (default 1e-9)
//   - OnAugment: observes each augmentation
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp[T comparable](
	ctx context.Context,
	g *core.WeightedGraph[T],
	source, sink T,
	opts *FlowOptions,
) (float64, error) {
	cut, err := MinSTCut(ctx, g, source, sink, opts)
	if err != nil {
		return 0, err
	}

	return cut.Value, nil
}

// MinSTCut computes a minimum source–sink cut via Edmonds-Karp. By max-flow
// min-cut duality its Value equals the maximum flow. SourceSide lists the
// vertices still reachable from source in the final residual network, in
// graph insertion order.
//
// Errors: ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
// EdgeError for negative capacities, ctx.Err() on cancellation.
func MinSTCut[T comparable](
	ctx context.Context,
	g *core.WeightedGraph[T],
	source, sink T,
	opts *FlowOptions,
) (STCut[T], error) {
	o := opts.normalize()
	if ctx == nil {
		ctx = context.Background()
	}
	if g == nil {
		return STCut[T]{}, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return STCut[T]{}, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return STCut[T]{}, ErrSinkNotFound
	}
	if source == sink {
		return STCut[T]{}, ErrSameEndpoints
	}

	net, err := newNetwork(g, o.Epsilon)
	if err != nil {
		return STCut[T]{}, err
	}
	s, t := net.index[source], net.index[sink]

	var maxFlow float64
	for {
		if err = ctx.Err(); err != nil {
			return STCut[T]{}, err
		}
		path, bottle := bfsAugmentingPath(net, s, t, o.Epsilon)
		if len(path) == 0 {
			break
		}
		for i := 0; i+1 < len(path); i++ {
			u, v := path[i], path[i+1]
			net.residual[u][v] -= bottle
			net.residual[v][u] += bottle
		}
		maxFlow += bottle
		o.OnAugment(bottle, len(path)-1)
	}

	side := net.reachable(s, o.Epsilon)
	cut := STCut[T]{Source: source, Sink: sink, Value: maxFlow}
	for i, in := range side {
		if in {
			cut.SourceSide = append(cut.SourceSide, net.labels[i])
		}
	}
	cut.CutEdges = g.CrossingEdges(func(v T) bool { return side[net.index[v]] })

	return cut, nil
}

// bfsAugmentingPath finds the shortest (fewest-arcs) path from s to t
// with capacity > eps on every arc, returning it with its bottleneck.
// Returns nil if t is unreachable.
func bfsAugmentingPath[T comparable](net *network[T], s, t int, eps float64) ([]int, float64) {
	parent := make([]int, len(net.labels))
	for i := range parent {
		parent[i] = -1
	}
	parent[s] = s
	queue := []int{s}
	for len(queue) > 0 && parent[t] < 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range net.adj[u] {
			if parent[v] >= 0 || net.residual[u][v] <= eps {
				continue
			}
			parent[v] = u
			queue = append(queue, v)
		}
	}
	if parent[t] < 0 {
		return nil, 0
	}

	bottle := math.Inf(1)
	path := []int{t}
	for cur := t; cur != s; cur = parent[cur] {
		bottle = math.Min(bottle, net.residual[parent[cur]][cur])
		path = append(path, parent[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, bottle
}
