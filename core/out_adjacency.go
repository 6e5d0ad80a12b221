// File: out_adjacency.go
// Role: OutAdj, the out-adjacency-only graph container (spec.md §4.3 table).
//
// Storage: each vertex slot holds outHead, the edge-slot index of the first
// edge in that vertex's outgoing incidence list (noLink if none). Each edge
// slot holds its endpoints plus outPrev/outNext, an intrusive doubly-linked
// list threaded through the tail vertex's outgoing list. New edges are
// pushed to the front of the list (O(1) insert); erase_edge unlinks in O(1)
// given the edge's own outPrev/outNext, no scan required.
//
// erase_vert is refused (ErrVertexHasEdges) while outHead != noLink — OutAdj
// tracks nothing about incoming edges, so it cannot and does not check them;
// this is spec.md §4.3's documented asymmetry, not an oversight.
package core

import "iter"

// outVertexRec is the per-vertex record stored in OutAdj's vertex slot table.
type outVertexRec struct {
	outHead int32
}

// outEdgeRec is the per-edge record stored in OutAdj's edge slot table.
type outEdgeRec struct {
	tail, head       VertexHandle
	outPrev, outNext int32
}

// OutAdj is a directed graph tracking each vertex's outgoing incidence list.
// out_edges(v) is O(deg_out(v)); in_edges is not provided (use ReverseView,
// or BiAdj if both directions are needed).
type OutAdj struct {
	verts *slotTable[outVertexRec]
	edges *slotTable[outEdgeRec]
}

// NewOutAdj returns an empty OutAdj container.
func NewOutAdj() *OutAdj {
	return &OutAdj{verts: newSlotTable[outVertexRec](), edges: newSlotTable[outEdgeRec]()}
}

// Order returns |𝒱|, the current number of vertices. Complexity: O(1).
func (g *OutAdj) Order() int { return g.verts.len() }

// Size returns |ℰ|, the current number of edges. Complexity: O(1).
func (g *OutAdj) Size() int { return g.edges.len() }

// InsertVert adds a vertex with no incident edges and returns its handle.
//
// Complexity: O(1) amortised.
func (g *OutAdj) InsertVert() VertexHandle {
	idx, gen := g.verts.insert(outVertexRec{outHead: noLink})

	return VertexHandle{idx: idx, gen: gen}
}

// InsertEdge adds an edge s->t (self-loops and parallel edges both allowed)
// and returns its handle. Precondition: s and t must be valid vertex handles
// of g.
//
// Complexity: O(1) amortised.
func (g *OutAdj) InsertEdge(s, t VertexHandle) (EdgeHandle, error) {
	if Checked {
		if !g.verts.contains(s.idx, s.gen) {
			return NullEdge, precondition(ErrVertexNotFound)
		}
		if !g.verts.contains(t.idx, t.gen) {
			return NullEdge, precondition(ErrVertexNotFound)
		}
	}

	idx, gen := g.edges.insert(outEdgeRec{tail: s, head: t, outPrev: noLink, outNext: noLink})

	// Push the new edge to the front of tail s's out-incidence list.
	sv := g.verts.atIdx(s.idx)
	oldHead := sv.outHead
	er := g.edges.atIdx(idx)
	er.outNext = oldHead
	if oldHead != noLink {
		g.edges.atIdx(uint32(oldHead)).outPrev = int32(idx)
	}
	sv.outHead = int32(idx)

	return EdgeHandle{idx: idx, gen: gen}, nil
}

// EraseEdge removes e. Precondition: e must be a valid edge handle of g.
//
// Complexity: O(1) amortised.
func (g *OutAdj) EraseEdge(e EdgeHandle) error {
	er := g.edges.get(e.idx, e.gen)
	if er == nil {
		if Checked {
			return precondition(ErrEdgeNotFound)
		}
		return nil
	}

	g.unlinkOut(e.idx, er)
	g.edges.erase(e.idx, e.gen)

	return nil
}

// unlinkOut removes edge slot idx from its tail's outgoing incidence list.
func (g *OutAdj) unlinkOut(idx uint32, er *outEdgeRec) {
	if er.outPrev != noLink {
		g.edges.atIdx(uint32(er.outPrev)).outNext = er.outNext
	} else {
		// idx was the head of its tail's list.
		g.verts.atIdx(er.tail.idx).outHead = er.outNext
	}
	if er.outNext != noLink {
		g.edges.atIdx(uint32(er.outNext)).outPrev = er.outPrev
	}
}

// EraseVert removes v. Precondition: v must be valid and have no outgoing
// edges (ErrVertexHasEdges otherwise) — OutAdj tracks nothing about v's
// incoming edges and cannot check them in O(1), so it does not try.
//
// Complexity: O(1) amortised.
func (g *OutAdj) EraseVert(v VertexHandle) error {
	vr := g.verts.get(v.idx, v.gen)
	if vr == nil {
		if Checked {
			return precondition(ErrVertexNotFound)
		}
		return nil
	}
	if vr.outHead != noLink {
		if Checked {
			return precondition(ErrVertexHasEdges)
		}
		return nil
	}

	g.verts.erase(v.idx, v.gen)

	return nil
}

// Clear removes every edge and vertex. Post: Order() == Size() == 0.
func (g *OutAdj) Clear() {
	g.verts.clear()
	g.edges.clear()
}

// Tail returns the source endpoint of e. Precondition: e must be valid.
func (g *OutAdj) Tail(e EdgeHandle) VertexHandle {
	if er := g.edges.get(e.idx, e.gen); er != nil {
		return er.tail
	}

	return NullVertex
}

// Head returns the destination endpoint of e. Precondition: e must be valid.
func (g *OutAdj) Head(e EdgeHandle) VertexHandle {
	if er := g.edges.get(e.idx, e.gen); er != nil {
		return er.head
	}

	return NullVertex
}

// RandomVert samples a vertex handle uniformly from 𝒱 using r.
// Precondition: Order() > 0.
//
// Complexity: O(1) expected.
func (g *OutAdj) RandomVert(r RandSource) (VertexHandle, error) {
	if g.verts.len() == 0 {
		if Checked {
			return NullVertex, precondition(ErrEmptyHandleSpace)
		}
		return NullVertex, nil
	}
	idx := g.verts.randomAliveIndex(r)

	return VertexHandle{idx: idx, gen: g.verts.genAt(idx)}, nil
}

// RandomEdge samples an edge handle uniformly from ℰ using r.
// Precondition: Size() > 0.
//
// Complexity: O(1) expected.
func (g *OutAdj) RandomEdge(r RandSource) (EdgeHandle, error) {
	if g.edges.len() == 0 {
		if Checked {
			return NullEdge, precondition(ErrEmptyHandleSpace)
		}
		return NullEdge, nil
	}
	idx := g.edges.randomAliveIndex(r)

	return EdgeHandle{idx: idx, gen: g.edges.genAt(idx)}, nil
}

// Verts yields every currently-valid vertex handle in an unspecified but
// stable (within a mutation-free window) order.
func (g *OutAdj) Verts() iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		for _, idx := range g.verts.alive {
			if !yield((VertexHandle{idx: idx, gen: g.verts.genAt(idx)})) {
				return
			}
		}
	}
}

// Edges yields every currently-valid edge handle.
func (g *OutAdj) Edges() iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		for _, idx := range g.edges.alive {
			if !yield((EdgeHandle{idx: idx, gen: g.edges.genAt(idx)})) {
				return
			}
		}
	}
}

// OutEdges yields v's outgoing incident edges. Precondition: v must be
// valid. Complexity: O(deg_out(v)) to exhaust.
func (g *OutAdj) OutEdges(v VertexHandle) iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		vr := g.verts.get(v.idx, v.gen)
		if vr == nil {
			return
		}
		cur := vr.outHead
		for cur != noLink {
			er := g.edges.atIdx(uint32(cur))
			h := EdgeHandle{idx: uint32(cur), gen: g.edges.genAt(uint32(cur))}
			next := er.outNext
			if !yield(h) {
				return
			}
			cur = next
		}
	}
}

// ReverseView returns a zero-copy adaptor presenting an in-adjacency
// surface over g: the view's InEdges(v) enumerates g's edges whose head is
// v, found by an O(E) scan of g.Edges(). See reverse_view.go.
func (g *OutAdj) ReverseView() InAdjView { return InAdjView{g: g} }
