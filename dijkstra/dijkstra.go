package dijkstra

import (
	"cmp"
	"iter"
	"sync"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/handlegraph/core"
)

// pqItem is the heap payload: a candidate vertex and the distance that
// produced the push. Stale entries (a vertex already finalized with a
// shorter distance) are detected and skipped on pop rather than removed
// from the heap in place — the same lazy decrease-key discipline the
// teacher's container/heap-based dijkstra package documents.
type pqItem[W any] struct {
	v    core.VertexHandle
	dist W
}

func newPQ[W cmp.Ordered]() *binaryheap.Heap {
	return binaryheap.NewWith(func(a, b interface{}) int {
		return cmp.Compare(a.(*pqItem[W]).dist, b.(*pqItem[W]).dist)
	})
}

// prescan rejects any negative edge weight up front, matching the teacher's
// O(E) fail-fast pass. Only performed in core.Checked builds; an unchecked
// build skips the scan and leaves negative-weight behavior undefined.
func prescan[W cmp.Ordered](edges iter.Seq[core.EdgeHandle], w WeightFunc[W]) error {
	if !core.Checked {
		return nil
	}
	var zero W
	for e := range edges {
		if cmp.Less(w(e), zero) {
			return ErrNegativeWeight
		}
	}

	return nil
}

// run is the shared Dijkstra engine. neighborEdges enumerates the edges to
// relax along from a just-finalized vertex; otherEnd picks which endpoint of
// such an edge is the neighbor being relaxed (Head for a forward pass,
// Tail for a backward one). Forward and backward passes share every other
// piece of bookkeeping, so the direction is the only thing parameterized.
func run[W cmp.Ordered](
	source core.VertexHandle,
	neighborEdges func(core.VertexHandle) iter.Seq[core.EdgeHandle],
	otherEnd func(core.EdgeHandle) core.VertexHandle,
	w WeightFunc[W],
	inbound bool,
) (*core.RootedTree, *core.VertMap[W]) {
	var zero W
	dist := make(map[core.VertexHandle]W)
	finalized := make(map[core.VertexHandle]bool)
	treeEdge := make(map[core.VertexHandle]core.EdgeHandle)

	dist[source] = zero
	pq := newPQ[W]()
	pq.Push(&pqItem[W]{v: source, dist: zero})

	for !pq.Empty() {
		raw, _ := pq.Pop()
		top := raw.(*pqItem[W])
		u := top.v
		if finalized[u] {
			continue
		}
		finalized[u] = true

		for e := range neighborEdges(u) {
			nb := otherEnd(e)
			if finalized[nb] {
				continue
			}
			cand := dist[u] + w(e)
			if cur, ok := dist[nb]; !ok || cmp.Less(cand, cur) {
				dist[nb] = cand
				treeEdge[nb] = e
				pq.Push(&pqItem[W]{v: nb, dist: cand})
			}
		}
	}

	builder := core.NewRootedTreeBuilder(source)
	distMap := core.NewVertMap[W](zero)
	for v, d := range dist {
		distMap.Set(v, d)
		if e, ok := treeEdge[v]; ok {
			builder.SetTreeEdge(v, e)
		}
	}

	return builder.Build(inbound), distMap
}

// ShortestPathsFrom computes a shortest-path tree rooted at s over every
// vertex reachable from s in g, plus the distance to each such vertex.
// Precondition: s must be a valid vertex handle of g.
//
// The returned VertMap's default is W's zero value, not a sentinel
// infinity — no such value exists for an arbitrary cmp.Ordered type. Use
// tree.InTree(v) to tell "unreached" from "reached with distance equal to
// the zero value"; do not read dist.Get(v) alone as a reachability check.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPathsFrom[G core.OutCapable, W cmp.Ordered](g G, s core.VertexHandle, w WeightFunc[W]) (*core.RootedTree, *core.VertMap[W], error) {
	if err := prescan(g.Edges(), w); err != nil {
		return nil, nil, err
	}

	tree, dist := run(s, g.OutEdges, func(e core.EdgeHandle) core.VertexHandle { return g.Head(e) }, w, true)

	return tree, dist, nil
}

// ShortestPathsTo computes an in-rooted shortest-path tree at t: every
// vertex that can reach t, and its distance to t. Equivalent to running
// ShortestPathsFrom on g's reverse view and swapping tail/head throughout;
// implemented directly against InEdges/Tail instead, since InCapable
// already exposes the edges needed without constructing a view.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPathsTo[G core.InCapable, W cmp.Ordered](g G, t core.VertexHandle, w WeightFunc[W]) (*core.RootedTree, *core.VertMap[W], error) {
	if err := prescan(g.Edges(), w); err != nil {
		return nil, nil, err
	}

	tree, dist := run(t, g.InEdges, func(e core.EdgeHandle) core.VertexHandle { return g.Tail(e) }, w, false)

	return tree, dist, nil
}

// ShortestPath returns the minimum-weight path from s to t as an ordered
// edge sequence, or nil if t is unreachable from s. Dijkstra from s with
// early termination the first time t is popped finalized, avoiding the cost
// of building the whole tree when only one target is wanted.
func ShortestPath[W cmp.Ordered](g *core.BiAdj, s, t core.VertexHandle, w WeightFunc[W]) ([]core.EdgeHandle, error) {
	if err := prescan(g.Edges(), w); err != nil {
		return nil, err
	}

	var zero W
	dist := make(map[core.VertexHandle]W)
	finalized := make(map[core.VertexHandle]bool)
	treeEdge := make(map[core.VertexHandle]core.EdgeHandle)

	dist[s] = zero
	pq := newPQ[W]()
	pq.Push(&pqItem[W]{v: s, dist: zero})

	for !pq.Empty() {
		raw, _ := pq.Pop()
		top := raw.(*pqItem[W])
		u := top.v
		if finalized[u] {
			continue
		}
		finalized[u] = true
		if u == t {
			break
		}

		for e := range g.OutEdges(u) {
			nb := g.Head(e)
			if finalized[nb] {
				continue
			}
			cand := dist[u] + w(e)
			if cur, ok := dist[nb]; !ok || cmp.Less(cand, cur) {
				dist[nb] = cand
				treeEdge[nb] = e
				pq.Push(&pqItem[W]{v: nb, dist: cand})
			}
		}
	}

	if !finalized[t] {
		return nil, nil
	}

	return walkBack(treeEdge, g, s, t), nil
}

// walkBack reconstructs the root->t edge sequence from a predecessor-edge
// map produced by a single-source relaxation pass.
func walkBack(treeEdge map[core.VertexHandle]core.EdgeHandle, g *core.BiAdj, s, t core.VertexHandle) []core.EdgeHandle {
	var rev []core.EdgeHandle
	cur := t
	for cur != s {
		e, ok := treeEdge[cur]
		if !ok {
			return nil
		}
		rev = append(rev, e)
		cur = g.Tail(e)
	}

	path := make([]core.EdgeHandle, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}

	return path
}

// ParallelShortestPath has identical signature and semantics to
// ShortestPath; spec.md leaves the parallel strategy implementation-defined.
// This implementation runs two independent, fully-completed Dijkstra passes
// concurrently — one forward from s (OutEdges), one backward from t
// (InEdges) — each with its own heap and maps, sharing no mutable state with
// the other or with the caller. Once both have run to completion, the
// meeting vertex minimizing fwdDist[v] + bwdDist[v] over every v reached by
// both passes is provably the shortest s->t path: for v on the true shortest
// path the sum equals the true distance, and no other v can sum to less
// since both passes compute true shortest distances. The call itself stays
// synchronous; no partial state is ever visible to the caller.
func ParallelShortestPath[W cmp.Ordered](g *core.BiAdj, s, t core.VertexHandle, w WeightFunc[W]) ([]core.EdgeHandle, error) {
	if err := prescan(g.Edges(), w); err != nil {
		return nil, err
	}

	type result struct {
		dist     map[core.VertexHandle]W
		treeEdge map[core.VertexHandle]core.EdgeHandle
	}

	passes := func(root core.VertexHandle, edgesOf func(core.VertexHandle) iter.Seq[core.EdgeHandle], other func(core.EdgeHandle) core.VertexHandle) result {
		var zero W
		dist := map[core.VertexHandle]W{root: zero}
		finalized := make(map[core.VertexHandle]bool)
		treeEdge := make(map[core.VertexHandle]core.EdgeHandle)

		pq := newPQ[W]()
		pq.Push(&pqItem[W]{v: root, dist: zero})
		for !pq.Empty() {
			raw, _ := pq.Pop()
			top := raw.(*pqItem[W])
			u := top.v
			if finalized[u] {
				continue
			}
			finalized[u] = true

			for e := range edgesOf(u) {
				nb := other(e)
				if finalized[nb] {
					continue
				}
				cand := dist[u] + w(e)
				if cur, ok := dist[nb]; !ok || cmp.Less(cand, cur) {
					dist[nb] = cand
					treeEdge[nb] = e
					pq.Push(&pqItem[W]{v: nb, dist: cand})
				}
			}
		}

		return result{dist: dist, treeEdge: treeEdge}
	}

	var fwd, bwd result
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		fwd = passes(s, g.OutEdges, func(e core.EdgeHandle) core.VertexHandle { return g.Head(e) })
	}()
	go func() {
		defer wg.Done()
		bwd = passes(t, g.InEdges, func(e core.EdgeHandle) core.VertexHandle { return g.Tail(e) })
	}()
	wg.Wait()

	var best struct {
		ok   bool
		meet core.VertexHandle
		cost W
	}
	for v, fd := range fwd.dist {
		bd, ok := bwd.dist[v]
		if !ok {
			continue
		}
		total := fd + bd
		if !best.ok || cmp.Less(total, best.cost) {
			best.ok = true
			best.meet = v
			best.cost = total
		}
	}
	if !best.ok {
		return nil, nil
	}

	fwdPath := walkBack(fwd.treeEdge, g, s, best.meet)
	var bwdPath []core.EdgeHandle
	cur := best.meet
	for cur != t {
		e, ok := bwd.treeEdge[cur]
		if !ok {
			return nil, nil
		}
		bwdPath = append(bwdPath, e)
		cur = g.Head(e)
	}

	return append(fwdPath, bwdPath...), nil
}
