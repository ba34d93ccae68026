// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// constants.go - method tags, fixed IDs and domain minimums.

package builder

// Method tags used as error context prefixes.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodGrid              = "Grid"
	MethodBarbell           = "Barbell"
)

// CenterVertexID is the fixed hub label of Star and Wheel.
const CenterVertexID = "Center"

// Domain minimums.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartition     = 1
	MinBarbellClique = 2
	MinRandomNodes   = 1
)

// Probability domain for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
