package builder

import (
	"fmt"
)

// Grid builds a rows x cols orthogonal grid with 4-neighborhood connectivity
// (rows >= 1, cols >= 1). Vertices are inserted in row-major order, so
// Verts[r*cols+c] is the handle for cell (r,c); the teacher's fixed "r,c"
// string ID scheme has no analog under opaque handle identity, so callers
// recover coordinates from the flat index instead. Each cell is joined to
// its right and bottom neighbors (when they exist) by a reciprocal edge.
// Grounded on the teacher's builder/impl_grid.go.
//
// Complexity: O(rows*cols) vertex inserts + O(rows*cols) reciprocal edges.
func Grid(rows, cols int, opts ...BuilderOption) (*Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("builder: Grid rows=%d cols=%d (each must be >= %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(opts...)
	gr := newGraph()
	for i := 0; i < rows*cols; i++ {
		gr.Verts = append(gr.Verts, gr.G.InsertVert())
	}

	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := gr.Verts[idx(r, c)]

			if c+1 < cols {
				v := gr.Verts[idx(r, c+1)]
				if err := addReciprocalEdge(gr, cfg, u, v); err != nil {
					return nil, fmt.Errorf("builder: Grid right-edge at (%d,%d): %w", r, c, err)
				}
			}

			if r+1 < rows {
				v := gr.Verts[idx(r+1, c)]
				if err := addReciprocalEdge(gr, cfg, u, v); err != nil {
					return nil, fmt.Errorf("builder: Grid bottom-edge at (%d,%d): %w", r, c, err)
				}
			}
		}
	}

	return gr, nil
}
