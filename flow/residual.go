// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// network is the residual network of an undirected graph over dense indices.
// Each undirected edge {u,v} of weight w becomes capacity w in both directions,
// so the forward and reverse residual arcs of one edge share a single pair of cells.
type network[T comparable] struct {
	labels   []T
	index    map[T]int
	adj      [][]int
	residual []map[int]float64
}

// newNetwork validates capacities and builds the residual network.
// Adjacency lists follow edge creation order, so traversals are deterministic.
//
// Complexity: O(V + E).
func newNetwork[T comparable](g *core.WeightedGraph[T], eps float64) (*network[T], error) {
	vs := g.Vertices()
	n := &network[T]{
		labels:   vs,
		index:    make(map[T]int, len(vs)),
		adj:      make([][]int, len(vs)),
		residual: make([]map[int]float64, len(vs)),
	}
	for i, v := range vs {
		n.index[v] = i
		n.residual[i] = make(map[int]float64)
	}
	for _, e := range g.Edges() {
		if e.Weight < -eps {
			return nil, EdgeError{From: fmt.Sprint(e.From), To: fmt.Sprint(e.To), Cap: e.Weight}
		}
		u, v := n.index[e.From], n.index[e.To]
		if _, ok := n.residual[u][v]; !ok {
			n.adj[u] = append(n.adj[u], v)
			n.adj[v] = append(n.adj[v], u)
		}
		n.residual[u][v] += e.Weight
		n.residual[v][u] += e.Weight
	}

	return n, nil
}

// reachable returns the indices reachable from s over arcs with capacity > eps.
func (n *network[T]) reachable(s int, eps float64) []bool {
	seen := make([]bool, len(n.labels))
	seen[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adj[u] {
			if !seen[v] && n.residual[u][v] > eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}
