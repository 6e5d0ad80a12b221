package dijkstra

import (
	"errors"

	"github.com/katalvlaran/handlegraph/core"
)

// Sentinel errors returned by this package's algorithms.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected
	// during the pre-scan. Only returned in core.Checked builds — unchecked
	// builds skip the scan and leave the algorithm's behavior on negative
	// weights undefined, per core's Checked/unchecked discipline.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// WeightFunc returns the weight of an edge. Any core.EdgeMap[W]'s Get method
// value satisfies this directly (Get has signature func(core.EdgeHandle) W),
// as does a plain closure over some other weight source — spec.md's "a
// weight map can be a property map or any pure function from edge handle to
// weight."
type WeightFunc[W any] func(e core.EdgeHandle) W
