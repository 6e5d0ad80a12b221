// Package builder defines shared constants used by graph builders, ensuring
// consistent minima across all topology constructors.
package builder

// Minimum meaningful sizes per topology, mirroring the teacher's
// builder/constants.go minima.
const (
	minCycleNodes = 3 // a ring needs at least 3 distinct vertices
	minPathNodes  = 2 // a path needs at least one edge
	minStarNodes  = 2 // one hub plus at least one leaf
	minWheelNodes = 4 // outer ring C_{n-1} must itself have >= 3 vertices
	minGridDim    = 1 // a 1x1 grid (single vertex, no edges) is valid
)

// Probability bounds for RandomSparse (Erdős-Rényi).
const (
	minProbability = 0.0
	maxProbability = 1.0
)

// maxStubMatchingAttempts bounds the number of shuffles RandomRegular tries.
const maxStubMatchingAttempts = 100
