package builder

import (
	"fmt"
)

// Star builds a star topology with n vertices (n >= 2): Verts[0] is the hub,
// Verts[1..n-1] are leaves, each joined to the hub by a reciprocal edge.
// The teacher's fixed "Center" vertex ID has no analog under opaque handle
// identity; the hub is instead documented as the first inserted vertex.
// Grounded on the teacher's builder/impl_star.go.
//
// Complexity: O(n) vertex inserts + O(n-1) reciprocal edge pairs.
func Star(n int, opts ...BuilderOption) (*Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("builder: Star n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(opts...)
	gr := newGraph()
	for i := 0; i < n; i++ {
		gr.Verts = append(gr.Verts, gr.G.InsertVert())
	}

	hub := gr.Verts[0]
	for i := 1; i < n; i++ {
		if err := addReciprocalEdge(gr, cfg, hub, gr.Verts[i]); err != nil {
			return nil, fmt.Errorf("builder: Star spoke %d: %w", i, err)
		}
	}

	return gr, nil
}
