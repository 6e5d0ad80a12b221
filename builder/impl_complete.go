package builder

import (
	"fmt"
)

// Complete builds the complete simple graph K_n (n >= 1): n vertices
// inserted in ascending index order, with a reciprocal edge for every
// unordered pair {i,j}, i<j.
// Grounded on the teacher's builder/impl_complete.go.
//
// Complexity: O(n) vertex inserts + O(n^2) reciprocal edge pairs.
func Complete(n int, opts ...BuilderOption) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("builder: Complete n=%d < min=1: %w", n, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(opts...)
	gr := newGraph()
	for i := 0; i < n; i++ {
		gr.Verts = append(gr.Verts, gr.G.InsertVert())
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := addReciprocalEdge(gr, cfg, gr.Verts[i], gr.Verts[j]); err != nil {
				return nil, fmt.Errorf("builder: Complete edge %d-%d: %w", i, j, err)
			}
		}
	}

	return gr, nil
}
