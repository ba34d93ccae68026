// SPDX-License-Identifier: MIT

package stoerwagner

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/mincut/bfs"
	"github.com/katalvlaran/mincut/core"
)

// solver owns the working graph and the super-vertex arena of one run.
type solver[T comparable] struct {
	input *core.WeightedGraph[T]
	opts  options
	work  *core.WeightedGraph[int]
	reg   registry[T]

	best   float64
	bestID int
	phases int
}

// New computes the global minimum cut of g with the Stoer-Wagner algorithm.
// The whole computation runs before New returns; g must not be mutated meanwhile.
//
// Steps:
//  1. Validate the input (ErrNilGraph, ErrEmptyGraph, ErrTrivialGraph,
//     ErrNegativeWeight, ErrDisconnected).
//  2. Intern every vertex as a singleton super-vertex and copy edges into the
//     working graph.
//  3. Run |V|-1 minimum-cut phases, remembering the lightest cut-of-the-phase
//     and the set represented by its last vertex.
//  4. Split g along that set and verify the crossing edges sum to the cut weight.
//
// Complexity: O(V·E·log V).
func New[T comparable](g *core.WeightedGraph[T], opts ...Option) (*MinCut[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	connected, err := validate(g, o)
	if err != nil {
		return nil, err
	}

	s := &solver[T]{input: g, opts: o, best: math.Inf(1), bestID: -1}
	if err = s.seed(); err != nil {
		return nil, err
	}
	if err = s.run(); err != nil {
		return nil, err
	}

	res, err := s.finalize()
	if err != nil {
		return nil, err
	}
	res.disconnected = !connected

	return res, nil
}

// validate checks the preconditions and reports whether g is connected.
func validate[T comparable](g *core.WeightedGraph[T], o options) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	switch g.VertexCount() {
	case 0:
		return false, ErrEmptyGraph
	case 1:
		return false, ErrTrivialGraph
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return false, errors.Wrapf(ErrNegativeWeight, "%v", e)
		}
	}
	connected, err := bfs.Connected(g)
	if err != nil {
		return false, errors.Wrap(err, "stoerwagner: connectivity check")
	}
	if !connected && !o.allowDisconnected {
		return false, ErrDisconnected
	}

	return connected, nil
}

// seed builds the working graph over singleton super-vertices.
func (s *solver[T]) seed() error {
	vs := s.input.Vertices()
	ids := s.reg.intern(vs)
	s.work = core.NewWeightedGraph[int]()
	for _, v := range vs {
		if err := s.work.AddVertex(ids[v]); err != nil {
			return errors.Wrapf(err, "stoerwagner: seed vertex %v", v)
		}
	}
	for _, e := range s.input.Edges() {
		if err := s.work.AddEdge(ids[e.From], ids[e.To], e.Weight); err != nil {
			return errors.Wrapf(err, "stoerwagner: seed %v", e)
		}
	}

	return nil
}

// run executes minimum-cut phases until one working vertex remains.
func (s *solver[T]) run() error {
	for s.work.VertexCount() > 1 {
		if err := s.opts.ctx.Err(); err != nil {
			return errors.Wrapf(err, "stoerwagner: aborted after %d phases", s.phases)
		}
		start := s.work.Vertices()[0]
		u, t, cut := phaseOrder(s.work, start)
		s.phases++

		improved := cut < s.best
		if improved {
			s.best = cut
			s.bestID = t
		}
		merged, err := s.contract(u, t)
		if err != nil {
			return err
		}
		s.opts.onPhase(PhaseInfo{
			Index:      s.phases,
			S:          u,
			T:          t,
			Merged:     merged,
			CutOfPhase: cut,
			Improved:   improved,
			TSize:      len(s.reg.members(t)),
			Remaining:  s.work.VertexCount(),
		})
	}

	return nil
}

// contract replaces a and b by a fresh super-vertex whose edge to every other
// neighbor x carries w(a,x)+w(b,x). Returns the new id.
func (s *solver[T]) contract(a, b int) (int, error) {
	merged := s.reg.merge(a, b)

	sums := make(map[int]float64)
	var order []int
	for _, v := range []int{a, b} {
		incident, err := s.work.EdgesOf(v)
		if err != nil {
			return 0, errors.Wrapf(err, "stoerwagner: contract %d", v)
		}
		for _, e := range incident {
			x, _ := e.Other(v)
			if x == a || x == b {
				continue
			}
			if _, seen := sums[x]; !seen {
				order = append(order, x)
			}
			sums[x] += e.Weight
		}
	}

	if err := s.work.RemoveVertex(a); err != nil {
		return 0, errors.Wrapf(err, "stoerwagner: contract %d", a)
	}
	if err := s.work.RemoveVertex(b); err != nil {
		return 0, errors.Wrapf(err, "stoerwagner: contract %d", b)
	}
	if err := s.work.AddVertex(merged); err != nil {
		return 0, errors.Wrapf(err, "stoerwagner: contract into %d", merged)
	}
	for _, x := range order {
		if err := s.work.AddEdge(merged, x, sums[x]); err != nil {
			return 0, errors.Wrapf(err, "stoerwagner: contract into %d", merged)
		}
	}

	return merged, nil
}

// finalize splits the input along the best set and checks the cut weight.
func (s *solver[T]) finalize() (*MinCut[T], error) {
	inCut := make(map[T]bool, len(s.reg.members(s.bestID)))
	for _, v := range s.reg.members(s.bestID) {
		inCut[v] = true
	}
	side := func(v T) bool { return inCut[v] }

	res := &MinCut[T]{
		weight:     s.best,
		partition1: s.input.InducedSubgraph(side),
		partition2: s.input.InducedSubgraph(func(v T) bool { return !inCut[v] }),
		cutEdges:   s.input.CrossingEdges(side),
		phases:     s.phases,
	}

	var sum float64
	for _, e := range res.cutEdges {
		sum += e.Weight
	}
	if !scalar.EqualWithinAbsOrRel(sum, s.best, cutTolerance, cutTolerance) {
		return nil, errors.Wrapf(ErrCutMismatch, "edges sum to %g, phase cut is %g", sum, s.best)
	}

	return res, nil
}
