// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, options, phase telemetry and the MinCut result type.

package stoerwagner

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mincut/core"
)

// Sentinel errors returned by New. Match them with errors.Is.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("stoerwagner: graph is nil")

	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("stoerwagner: graph has no vertices")

	// ErrTrivialGraph indicates a single-vertex graph, which has no cut.
	ErrTrivialGraph = errors.New("stoerwagner: graph has a single vertex")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("stoerwagner: negative edge weight")

	// ErrDisconnected indicates a disconnected graph without WithAllowDisconnected.
	ErrDisconnected = errors.New("stoerwagner: graph is disconnected")

	// ErrCutMismatch indicates the crossing edges do not add up to the recorded cut weight.
	ErrCutMismatch = errors.New("stoerwagner: cut edges do not sum to cut weight")
)

// cutTolerance bounds the absolute and relative error accepted by the final check.
const cutTolerance = 1e-9

// PhaseInfo describes one completed minimum-cut phase.
type PhaseInfo struct {
	// Index is the 1-based phase number.
	Index int

	// S and T are the super-vertex ids of the last two vertices of the ordering.
	S, T int

	// Merged is the id assigned to the contraction of S and T.
	Merged int

	// CutOfPhase is the attachment weight of T when it was selected.
	CutOfPhase float64

	// Improved is true when CutOfPhase became the best cut so far.
	Improved bool

	// TSize is the number of original vertices represented by T.
	TSize int

	// Remaining is the number of working vertices after contraction.
	Remaining int
}

// Option configures a solver run.
type Option func(*options)

type options struct {
	ctx               context.Context
	onPhase           func(PhaseInfo)
	allowDisconnected bool
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		onPhase: func(PhaseInfo) {},
	}
}

// WithContext sets a context checked between phases. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnPhase registers a hook called after every phase. A nil fn is ignored.
func WithOnPhase(fn func(PhaseInfo)) Option {
	return func(o *options) {
		if fn != nil {
			o.onPhase = fn
		}
	}
}

// WithAllowDisconnected runs the algorithm on disconnected graphs instead of
// failing with ErrDisconnected. The resulting cut has weight 0.
func WithAllowDisconnected() Option {
	return func(o *options) { o.allowDisconnected = true }
}

// MinCut is the immutable result of a Stoer-Wagner run.
// All accessors return copies.
type MinCut[T comparable] struct {
	weight       float64
	partition1   *core.WeightedGraph[T]
	partition2   *core.WeightedGraph[T]
	cutEdges     []core.Edge[T]
	phases       int
	disconnected bool
}

// Partition1 returns the side that was merged into the last vertex of the best phase.
func (m *MinCut[T]) Partition1() *core.WeightedGraph[T] {
	return m.partition1.Clone()
}

// Partition2 returns the complement of Partition1.
func (m *MinCut[T]) Partition2() *core.WeightedGraph[T] {
	return m.partition2.Clone()
}

// CutEdges returns the edges of the input graph with one endpoint on each side.
func (m *MinCut[T]) CutEdges() []core.Edge[T] {
	out := make([]core.Edge[T], len(m.cutEdges))
	copy(out, m.cutEdges)

	return out
}

// BestWeight returns the weight of the minimum cut.
func (m *MinCut[T]) BestWeight() float64 { return m.weight }

// CutSet returns the vertices of Partition1 in input insertion order.
func (m *MinCut[T]) CutSet() []T { return m.partition1.Vertices() }

// Phases returns how many minimum-cut phases ran (|V|-1).
func (m *MinCut[T]) Phases() int { return m.phases }

// Product returns |Partition1|·|Partition2|.
func (m *MinCut[T]) Product() int {
	return m.partition1.VertexCount() * m.partition2.VertexCount()
}

// Disconnected reports whether the input graph was disconnected.
func (m *MinCut[T]) Disconnected() bool { return m.disconnected }
