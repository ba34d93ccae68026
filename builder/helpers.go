// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// helpers.go - shared insertion helpers. Every helper wraps core errors with
// the calling method tag and ErrConstructFailed so both classes stay matchable.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mincut/core"
)

// addVertices inserts ids in order.
func addVertices(method string, g *core.WeightedGraph[string], ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addEdge inserts u--v with the next configured weight.
func addEdge(method string, g *core.WeightedGraph[string], cfg builderConfig, u, v string) error {
	w := cfg.weight() // one draw per edge keeps seeded runs reproducible
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s--%s, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// addCompleteEdges links every pair of ids (i<j), in lexicographic index order.
func addCompleteEdges(method string, g *core.WeightedGraph[string], cfg builderConfig, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(method, g, cfg, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// makeIDs produces ids via idFn for indices [from, from+n).
func makeIDs(idFn IDFn, from, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(from + i)
	}

	return ids
}

// prefixedIDs produces prefix0..prefix(n-1).
func prefixedIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}

// gridVertexID renders a grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
