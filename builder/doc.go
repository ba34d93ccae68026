// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options style generators of
// weighted undirected graphs (core.WeightedGraph[string]). They serve as test
// fixtures and benchmark inputs for the minimum-cut solvers, and each topology
// has a known minimum cut under constant weights.
//
// Components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph, resolved config, constructors in order.
//     – Apply(g, bopts, cons...):        overlay constructors on an existing graph.
//   - Topologies (Constructor):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse (G(n,p)), Barbell (two cliques and a bridge).
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn ("0","1",…), OneBasedIDFn ("1","2",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), SymbolNumberIDFn(prefix).
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Same constructors, options and seed produce identical graphs, including
//     vertex insertion order and edge IDs.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
//   - Generated weights are finite and non-negative.
package builder
