package traverse

import (
	"fmt"

	"github.com/katalvlaran/handlegraph/core"
)

// DFS explores g depth-first from s, returning the DFS tree and the
// post-order visit sequence. OnVisit fires pre-order (on discovery), OnExit
// fires post-order (once all descendants are explored); either returning an
// error aborts the traversal. Mirrors the teacher's dfsWalker.traverse
// recursion shape.
//
// Complexity: O(V + E) time, O(V) space (recursion depth bounded by V).
func DFS[G core.OutCapable](g G, s core.VertexHandle, opts ...DFSOption) (*core.RootedTree, []core.VertexHandle, error) {
	if s.IsNull() {
		return nil, nil, ErrNullSource
	}

	cfg := defaultDFSConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	builder := core.NewRootedTreeBuilder(s)
	visited := make(map[core.VertexHandle]bool)
	order := make([]core.VertexHandle, 0)

	var descend func(v core.VertexHandle, depth int) error
	descend = func(v core.VertexHandle, depth int) error {
		select {
		case <-cfg.ctx.Done():
			return cfg.ctx.Err()
		default:
		}

		visited[v] = true

		if cfg.onVisit != nil {
			if err := cfg.onVisit(v, depth); err != nil {
				return fmt.Errorf("traverse: DFS OnVisit at %v: %w", v, err)
			}
		}

		if cfg.maxDepth < 0 || depth < cfg.maxDepth {
			for e := range g.OutEdges(v) {
				nbr := g.Head(e)
				if visited[nbr] {
					continue
				}
				builder.SetTreeEdge(nbr, e)
				if err := descend(nbr, depth+1); err != nil {
					return err
				}
			}
		}

		if cfg.onExit != nil {
			if err := cfg.onExit(v, depth); err != nil {
				return fmt.Errorf("traverse: DFS OnExit at %v: %w", v, err)
			}
		}

		order = append(order, v)

		return nil
	}

	if err := descend(s, 0); err != nil {
		return builder.Build(true), order, err
	}

	return builder.Build(true), order, nil
}
