// SPDX-License-Identifier: MIT

// Package loader reads graphs for the minimum-cut solver.
//
// Two textual formats are supported:
//
//   - Adjacency text: one vertex per line followed by a colon and its
//     neighbors, e.g. "jqt: rhn xhk nvd". Every listed pair becomes a
//     unit-weight edge. Blank lines and "#" comments are ignored.
//
//   - HCL graph files (".hcl"):
//
//     vertices = ["a", "b", "c"]
//     edge "a" "b" { weight = 2 }
//     edge "b" "c" {}
//
//     The vertices attribute is optional and only needed for isolated
//     vertices; a missing weight defaults to 1.
//
// Load picks the format by file extension. Article and SampleAdjacency
// provide two small built-in inputs with known answers.
package loader
