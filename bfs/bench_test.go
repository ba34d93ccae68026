// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/mincut/bfs"
	"github.com/katalvlaran/mincut/core"
)

// BenchmarkBFS_Path measures a traversal over a 1000-vertex path.
func BenchmarkBFS_Path(b *testing.B) {
	g := core.NewWeightedGraph[int]()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
