// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade: policy getter and Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of sizes and weight aggregates.
type GraphStats struct {
	Parallel    ParallelPolicy // merge policy for repeated pairs
	VertexCount int            // |V|
	EdgeCount   int            // |E|
	TotalWeight float64        // Σ w(e)
	MinDegree   int            // smallest vertex degree (0 for an empty graph)
	MaxDegree   int            // largest vertex degree
	Isolated    int            // vertices with no incident edge
}

// Parallel reports the construction-time ParallelPolicy.
// Complexity: O(1). Read lock.
func (g *WeightedGraph[T]) Parallel() ParallelPolicy {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.parallel
}

// Stats produces a deterministic snapshot of sizes and degree extremes.
//
// Implementation:
//   - Stage 1: Under the read lock, copy counts.
//   - Stage 2: Scan adjacency buckets once for degree extremes and isolated vertices.
//   - Stage 3: Scan the edge catalog once for the total weight.
//
// Complexity: O(V + E).
func (g *WeightedGraph[T]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Parallel:    g.parallel,
		VertexCount: len(g.adjacency),
		EdgeCount:   len(g.edges),
	}
	first := true
	for _, bucket := range g.adjacency {
		d := len(bucket)
		if d == 0 {
			stats.Isolated++
		}
		if first || d < stats.MinDegree {
			stats.MinDegree = d
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		first = false
	}
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
	}

	return stats
}
