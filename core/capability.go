// File: capability.go
// Role: the tagged-interface dispatch surface the algorithm packages
// (dijkstra, primtree, traverse) are written against, instead of against any
// one concrete container (spec.md §9 "Dispatch over capability sets").
package core

import "iter"

// OutCapable is satisfied by any container that can enumerate vertices,
// edges, and each vertex's outgoing edges: *OutAdj, *BiAdj, and OutAdjView
// (the reverse of an InAdj).
type OutCapable interface {
	Order() int
	Verts() iter.Seq[VertexHandle]
	Edges() iter.Seq[EdgeHandle]
	OutEdges(VertexHandle) iter.Seq[EdgeHandle]
	Tail(EdgeHandle) VertexHandle
	Head(EdgeHandle) VertexHandle
}

// InCapable is the symmetric capability for incoming edges: *InAdj, *BiAdj,
// and InAdjView (the reverse of an OutAdj).
type InCapable interface {
	Order() int
	Verts() iter.Seq[VertexHandle]
	Edges() iter.Seq[EdgeHandle]
	InEdges(VertexHandle) iter.Seq[EdgeHandle]
	Tail(EdgeHandle) VertexHandle
	Head(EdgeHandle) VertexHandle
}

// BiCapable is satisfied only by types exposing both directions in
// O(deg): *BiAdj and its reverse, *BiAdjView. The dijkstra package's
// ParallelShortestPath expands forward from the source and backward from
// the target, so it needs both directions (it takes a *BiAdj).
type BiCapable interface {
	OutCapable
	InCapable
}
