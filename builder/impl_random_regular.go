package builder

import (
	"fmt"
)

// RandomRegular builds an undirected d-regular simple graph over n vertices
// via stub-matching: n*d stubs (each vertex repeated d times) are shuffled
// and paired into reciprocal edges, reshuffling whenever a pairing would
// produce a self-loop or a duplicate edge, for at most
// maxStubMatchingAttempts shuffles in total. Unlike the teacher, which branches on
// g.Looped()/g.Multigraph() mode flags, handlegraph's containers have no
// such flags, so this builder always enforces the simple-graph policy
// (no self-loops, no parallel edges) regardless of configuration.
// Grounded on the teacher's builder/impl_random_regular.go.
//
// Requires n >= 1, 0 <= d < n, n*d even, and a non-nil RNG (WithRand or
// WithSeed); returns ErrConstructFailed if no valid pairing is found within
// the attempt budget.
func RandomRegular(n, d int, opts ...BuilderOption) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("builder: RandomRegular n=%d < min=1: %w", n, ErrTooFewVertices)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("builder: RandomRegular degree must be in [0,%d), got %d: %w", n, d, ErrTooFewVertices)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("builder: RandomRegular n*d must be even (n=%d, d=%d): %w", n, d, ErrTooFewVertices)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("builder: RandomRegular: %w", ErrNeedRandSource)
	}

	gr := newGraph()
	for i := 0; i < n; i++ {
		gr.Verts = append(gr.Verts, gr.G.InsertVert())
	}

	stubCount := n * d
	if stubCount == 0 {
		return gr, nil
	}
	stubs := make([]int, 0, stubCount)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			u := gr.Verts[stubs[i]]
			v := gr.Verts[stubs[i+1]]
			if err := addReciprocalEdge(gr, cfg, u, v); err != nil {
				return nil, fmt.Errorf("builder: RandomRegular edge %v-%v: %w", u, v, err)
			}
		}
		return gr, nil
	}

	return nil, fmt.Errorf("builder: RandomRegular: failed after %d attempts: %w", maxStubMatchingAttempts, ErrConstructFailed)
}
