package traverse

import (
	"fmt"

	llq "github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/handlegraph/core"
)

type bfsItem struct {
	v     core.VertexHandle
	depth int
}

// BFS explores g in non-decreasing distance from s, returning the BFS tree
// and the visit order. Hooks and depth limiting mirror the teacher's
// bfs.BFS; FilterNeighbor can prune individual out-edges before they're
// ever enqueued.
//
// Complexity: O(V + E) time, O(V) space.
func BFS[G core.OutCapable](g G, s core.VertexHandle, opts ...BFSOption) (*core.RootedTree, []core.VertexHandle, error) {
	if s.IsNull() {
		return nil, nil, ErrNullSource
	}

	cfg := defaultBFSConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	builder := core.NewRootedTreeBuilder(s)
	visited := make(map[core.VertexHandle]bool)
	order := make([]core.VertexHandle, 0)

	queue := llq.New()
	enqueue := func(v core.VertexHandle, depth int) {
		visited[v] = true
		cfg.onEnqueue(v, depth)
		queue.Enqueue(bfsItem{v: v, depth: depth})
	}
	enqueue(s, 0)

	for !queue.Empty() {
		select {
		case <-cfg.ctx.Done():
			return builder.Build(true), order, cfg.ctx.Err()
		default:
		}

		raw, _ := queue.Dequeue()
		item := raw.(bfsItem)
		cfg.onDequeue(item.v, item.depth)

		order = append(order, item.v)
		if err := cfg.onVisit(item.v, item.depth); err != nil {
			return builder.Build(true), order, fmt.Errorf("traverse: BFS OnVisit at %v: %w", item.v, err)
		}

		nextDepth := item.depth + 1
		if cfg.maxDepth > 0 && nextDepth > cfg.maxDepth {
			continue
		}
		for e := range g.OutEdges(item.v) {
			nbr := g.Head(e)
			if visited[nbr] || !cfg.filterNeighbor(item.v, nbr) {
				continue
			}
			builder.SetTreeEdge(nbr, e)
			enqueue(nbr, nextDepth)
		}
	}

	return builder.Build(true), order, nil
}
