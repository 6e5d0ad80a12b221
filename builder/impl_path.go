package builder

import (
	"fmt"

	"github.com/katalvlaran/handlegraph/core"
)

// Path builds a simple path P_n (n >= 2): n vertices inserted in ascending
// index order, with a reciprocal edge joining each consecutive pair.
// Grounded on the teacher's builder/impl_path.go.
//
// Complexity: O(n) vertex inserts + O(n-1) reciprocal edge pairs.
func Path(n int, opts ...BuilderOption) (*Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("builder: Path n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(opts...)
	gr := newGraph()
	gr.Verts = make([]core.VertexHandle, 0, n)
	for i := 0; i < n; i++ {
		gr.Verts = append(gr.Verts, gr.G.InsertVert())
	}

	for i := 1; i < n; i++ {
		if err := addReciprocalEdge(gr, cfg, gr.Verts[i-1], gr.Verts[i]); err != nil {
			return nil, fmt.Errorf("builder: Path edge %d-%d: %w", i-1, i, err)
		}
	}

	return gr, nil
}
