package builder

import (
	"fmt"
)

// Cycle builds a simple cycle C_n (n >= 3): n vertices inserted in ascending
// index order, with a reciprocal edge joining i and (i+1)%n for each i.
// Grounded on the teacher's builder/impl_cycle.go.
//
// Complexity: O(n) vertex inserts + O(n) reciprocal edge pairs.
func Cycle(n int, opts ...BuilderOption) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("builder: Cycle n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(opts...)
	gr := newGraph()
	for i := 0; i < n; i++ {
		gr.Verts = append(gr.Verts, gr.G.InsertVert())
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if err := addReciprocalEdge(gr, cfg, gr.Verts[i], gr.Verts[j]); err != nil {
			return nil, fmt.Errorf("builder: Cycle edge %d-%d: %w", i, j, err)
		}
	}

	return gr, nil
}
