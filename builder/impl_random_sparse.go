package builder

import (
	"fmt"
)

// RandomSparse builds an Erdos-Renyi-style random graph over n vertices
// (n >= 1): each unordered pair {i,j}, i<j, is joined by a reciprocal edge
// independently with probability p (0 <= p <= 1). Self-loops are never
// sampled, matching the teacher's undirected-mode trial order. A non-nil
// *rand.Rand is required whenever 0 < p < 1; for p in {0,1} the outcome is
// deterministic and no RNG is needed.
// Grounded on the teacher's builder/impl_random_sparse.go.
//
// Complexity: O(n) vertex inserts + O(n^2) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("builder: RandomSparse n=%d < min=1: %w", n, ErrTooFewVertices)
	}
	if p < minProbability || p > maxProbability {
		return nil, fmt.Errorf("builder: RandomSparse p=%.6f not in [%.1f,%.1f]: %w",
			p, minProbability, maxProbability, ErrInvalidProbability)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("builder: RandomSparse: %w", ErrNeedRandSource)
	}

	gr := newGraph()
	for i := 0; i < n; i++ {
		gr.Verts = append(gr.Verts, gr.G.InsertVert())
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p == 1
			if cfg.rng != nil {
				include = cfg.rng.Float64() < p
			}
			if !include {
				continue
			}
			if err := addReciprocalEdge(gr, cfg, gr.Verts[i], gr.Verts[j]); err != nil {
				return nil, fmt.Errorf("builder: RandomSparse edge %d-%d: %w", i, j, err)
			}
		}
	}

	return gr, nil
}
