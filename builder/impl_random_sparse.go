// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi G(n,p) sampler.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required for 0 < p < 1 (else ErrNeedRandSource).
//   - Vertices via cfg.idFn; pairs {i,j}, i<j, tried in lexicographic order.
//
// Complexity: O(n²) Bernoulli trials.
// Determinism: one rng draw per trial, then one weight draw per accepted pair,
// so a fixed seed reproduces the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		// 1) Validate n and p before touching g or the rng.
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		// 2) Degenerate p in {0,1} is deterministic; anything between needs an rng.
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 3) All n vertices exist even if no edge is sampled.
		ids := makeIDs(cfg.idFn, 0, n)
		if err := addVertices(MethodRandomSparse, g, ids); err != nil {
			return err
		}
		// 4) One trial per unordered pair in (i, j) order; the weight is drawn only on accept.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !accept(cfg, p) {
					continue
				}
				if err := addEdge(MethodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// accept performs one Bernoulli(p) trial; p ∈ {0,1} needs no rng.
func accept(cfg builderConfig, p float64) bool {
	switch {
	case p == MinProbability:
		return false
	case p == MaxProbability:
		return true
	}

	return cfg.rng.Float64() < p
}
