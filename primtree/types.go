package primtree

import "github.com/katalvlaran/handlegraph/core"

// WeightFunc returns the weight of an edge. Any core.EdgeMap[W]'s Get method
// value satisfies this directly, as does a plain closure over some other
// weight source.
type WeightFunc[W any] func(e core.EdgeHandle) W
