package builder

import (
	"fmt"
)

// Wheel builds a wheel W_n = C_{n-1} + hub (n >= 4): an outer ring of n-1
// vertices (Verts[0..n-2]) plus a hub (Verts[n-1]) spoked to every ring
// vertex. The ring construction is inlined rather than composed from Cycle,
// since each topology now returns its own independent *Graph rather than
// writing into a graph shared across constructors.
// Grounded on the teacher's builder/impl_wheel.go.
//
// Complexity: O(n) vertex inserts + O(n-1) ring edges + O(n-1) spokes.
func Wheel(n int, opts ...BuilderOption) (*Graph, error) {
	if n < minWheelNodes {
		return nil, fmt.Errorf("builder: Wheel n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
	}

	ringSize := n - 1
	cfg := newBuilderConfig(opts...)
	gr := newGraph()
	for i := 0; i < n; i++ {
		gr.Verts = append(gr.Verts, gr.G.InsertVert())
	}

	for i := 0; i < ringSize; i++ {
		j := (i + 1) % ringSize
		if err := addReciprocalEdge(gr, cfg, gr.Verts[i], gr.Verts[j]); err != nil {
			return nil, fmt.Errorf("builder: Wheel ring edge %d-%d: %w", i, j, err)
		}
	}

	hub := gr.Verts[ringSize]
	for i := 0; i < ringSize; i++ {
		if err := addReciprocalEdge(gr, cfg, hub, gr.Verts[i]); err != nil {
			return nil, fmt.Errorf("builder: Wheel spoke %d: %w", i, err)
		}
	}

	return gr, nil
}
