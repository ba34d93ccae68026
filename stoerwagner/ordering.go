// SPDX-License-Identifier: MIT
//
// File: ordering.go
// Role: Maximum adjacency ordering over the working graph.
//
// The unselected vertices live in a red-black tree keyed by (attachment desc, id asc),
// so Left() is always the next vertex to select. attach[v] mirrors the key currently
// stored for v; increasing an attachment removes the old key and inserts the new one.

package stoerwagner

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/mincut/core"
)

// attachKey orders candidates by descending attachment, then ascending id.
type attachKey struct {
	weight float64
	id     int
}

func compareAttachKeys(a, b interface{}) int {
	ka := a.(attachKey)
	kb := b.(attachKey)
	switch {
	case ka.weight > kb.weight:
		return -1
	case ka.weight < kb.weight:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	}

	return 0
}

// frontier holds the unselected vertices of one phase.
type frontier struct {
	tree   *redblacktree.Tree
	attach map[int]float64
}

func newFrontier(vs []int) *frontier {
	f := &frontier{
		tree:   &redblacktree.Tree{Comparator: compareAttachKeys},
		attach: make(map[int]float64, len(vs)),
	}
	for _, v := range vs {
		f.attach[v] = 0
		f.tree.Put(attachKey{id: v}, nil)
	}

	return f
}

// take removes v from the frontier and returns its attachment.
func (f *frontier) take(v int) float64 {
	w := f.attach[v]
	f.tree.Remove(attachKey{weight: w, id: v})
	delete(f.attach, v)

	return w
}

// popMax removes and returns the vertex with the largest attachment.
func (f *frontier) popMax() (int, float64) {
	k := f.tree.Left().Key.(attachKey)
	f.tree.Remove(k)
	delete(f.attach, k.id)

	return k.id, k.weight
}

// raise adds w to the attachment of v if v is still unselected.
func (f *frontier) raise(v int, w float64) {
	old, ok := f.attach[v]
	if !ok {
		return
	}
	f.tree.Remove(attachKey{weight: old, id: v})
	f.attach[v] = old + w
	f.tree.Put(attachKey{weight: old + w, id: v}, nil)
}

func (f *frontier) empty() bool { return f.tree.Empty() }

// phaseOrder runs one maximum adjacency ordering starting at start and returns
// the last two selected vertices together with the cut-of-the-phase.
//
// Complexity: O(E log V).
func phaseOrder(work *core.WeightedGraph[int], start int) (s, t int, cut float64) {
	f := newFrontier(work.Vertices())

	selectVertex := func(v int) {
		incident, _ := work.EdgesOf(v)
		for _, e := range incident {
			u, _ := e.Other(v)
			f.raise(u, e.Weight)
		}
	}

	f.take(start)
	selectVertex(start)
	s, t = start, start
	for !f.empty() {
		v, w := f.popMax()
		s, t, cut = t, v, w
		selectVertex(v)
	}

	return s, t, cut
}
