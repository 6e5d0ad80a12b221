package primtree

import (
	"cmp"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/handlegraph/core"
)

// frontierItem is a candidate edge leading out of the current tree: its
// weight orders the heap, its head is the vertex it would add, its edge is
// the tree edge that would be recorded for that vertex.
type frontierItem[W any] struct {
	edge   core.EdgeHandle
	vertex core.VertexHandle
	weight W
}

func newFrontier[W cmp.Ordered]() *binaryheap.Heap {
	return binaryheap.NewWith(func(a, b interface{}) int {
		return cmp.Compare(a.(*frontierItem[W]).weight, b.(*frontierItem[W]).weight)
	})
}

// MinimumTreeReachableFrom computes a minimum-weight spanning tree of the
// component reachable from s, growing outward one vertex at a time (Prim's
// algorithm). A frontier heap of candidate edges leaving the current tree
// only ever contains edges whose tail is already in the tree, so the cut
// property holds by construction: no separate minimality check is needed.
//
// Complexity: O(E log V) time, O(V + E) space.
func MinimumTreeReachableFrom[G core.OutCapable, W cmp.Ordered](g G, s core.VertexHandle, w WeightFunc[W]) *core.RootedTree {
	inTree := make(map[core.VertexHandle]bool)
	builder := core.NewRootedTreeBuilder(s)
	inTree[s] = true

	frontier := newFrontier[W]()
	offer := func(from core.VertexHandle) {
		for e := range g.OutEdges(from) {
			h := g.Head(e)
			if inTree[h] {
				continue
			}
			frontier.Push(&frontierItem[W]{edge: e, vertex: h, weight: w(e)})
		}
	}
	offer(s)

	for !frontier.Empty() {
		raw, _ := frontier.Pop()
		top := raw.(*frontierItem[W])
		if inTree[top.vertex] {
			continue
		}
		inTree[top.vertex] = true
		builder.SetTreeEdge(top.vertex, top.edge)
		offer(top.vertex)
	}

	return builder.Build(true)
}

// MinimumTreeReachingTo is the ReverseView mirror of MinimumTreeReachableFrom:
// a minimum-weight spanning tree of the component that can reach t, grown
// backward over InEdges instead of forward over OutEdges.
//
// Complexity: O(E log V) time, O(V + E) space.
func MinimumTreeReachingTo[G core.InCapable, W cmp.Ordered](g G, t core.VertexHandle, w WeightFunc[W]) *core.RootedTree {
	inTree := make(map[core.VertexHandle]bool)
	builder := core.NewRootedTreeBuilder(t)
	inTree[t] = true

	frontier := newFrontier[W]()
	offer := func(from core.VertexHandle) {
		for e := range g.InEdges(from) {
			tailV := g.Tail(e)
			if inTree[tailV] {
				continue
			}
			frontier.Push(&frontierItem[W]{edge: e, vertex: tailV, weight: w(e)})
		}
	}
	offer(t)

	for !frontier.Empty() {
		raw, _ := frontier.Pop()
		top := raw.(*frontierItem[W])
		if inTree[top.vertex] {
			continue
		}
		inTree[top.vertex] = true
		builder.SetTreeEdge(top.vertex, top.edge)
		offer(top.vertex)
	}

	return builder.Build(false)
}
