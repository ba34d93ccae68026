// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/mincut/core"

// Components partitions the vertices of g into connected components.
//
// Components are listed in order of their first vertex (insertion order), and the
// vertices of a component follow BFS visit order from that vertex. An empty graph
// has no components.
//
// Complexity: O(V + E).
func Components[T comparable](g *core.WeightedGraph[T]) ([][]T, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[T]bool, g.VertexCount())
	var out [][]T
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// Connected reports whether every vertex of g is reachable from every other.
// Graphs with fewer than two vertices are connected.
func Connected[T comparable](g *core.WeightedGraph[T]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) < 2 {
		return true, nil
	}
	res, err := BFS(g, vs[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(vs), nil
}
