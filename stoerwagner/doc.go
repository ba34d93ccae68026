// SPDX-License-Identifier: MIT

// Package stoerwagner computes the global minimum cut of an undirected graph
// with non-negative edge weights using the Stoer-Wagner algorithm.
//
// What
//
//	A global minimum cut splits the vertex set into two non-empty parts so that
//	the total weight of edges running between them is as small as possible.
//	New(g) returns a MinCut holding both parts as induced subgraphs of g, the
//	crossing edges and their total weight.
//
// How
//
//	The solver interns every vertex of g as a singleton super-vertex (an int id
//	in an append-only registry) and copies g into a working graph over those ids.
//	Each phase then:
//	  1. Starts from the first working vertex and grows a maximum adjacency
//	     ordering: repeatedly select the unselected vertex most tightly attached
//	     to the selected ones (ties: smaller id). Candidates live in a red-black
//	     tree keyed by (attachment desc, id asc).
//	  2. Takes the last two selected vertices s and t. The attachment of t is
//	     the cut-of-the-phase; it is the weight of the cut isolating t's set.
//	  3. Remembers t's set if its cut is the lightest so far (strict <, so the
//	     earliest phase wins ties).
//	  4. Contracts s and t into a fresh super-vertex, summing parallel weights.
//	After |V|-1 phases one vertex remains and the remembered set is one side of a
//	global minimum cut.
//
// Complexity
//
//   - Time:   O(V · E · log V)
//   - Memory: O(V + E) for the working graph, plus O(V²) worst case for the
//     registry of merged sets.
//
// Options
//
//	WithContext(ctx)         checked between phases; cancellation aborts without a result
//	WithOnPhase(fn)          observe every phase (PhaseInfo)
//	WithAllowDisconnected()  run on disconnected input; the cut then weighs 0
//
// Errors
//
//	ErrNilGraph, ErrEmptyGraph, ErrTrivialGraph, ErrNegativeWeight,
//	ErrDisconnected, ErrCutMismatch, and wrapped ctx.Err().
//
// The input graph must not be mutated while New runs. Results are immutable
// and every accessor returns a copy.
package stoerwagner
