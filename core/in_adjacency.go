// File: in_adjacency.go
// Role: InAdj, the in-adjacency-only graph container (spec.md §4.3 table).
// Symmetric to OutAdj: each vertex slot holds inHead, the head of its
// incoming-edge incidence list; each edge slot holds inPrev/inNext instead
// of outPrev/outNext. erase_vert is refused while inHead != noLink.
package core

import "iter"

type inVertexRec struct {
	inHead int32
}

type inEdgeRec struct {
	tail, head     VertexHandle
	inPrev, inNext int32
}

// InAdj is a directed graph tracking each vertex's incoming incidence list.
// in_edges(v) is O(deg_in(v)); out_edges is not provided (use ReverseView,
// or BiAdj if both directions are needed).
type InAdj struct {
	verts *slotTable[inVertexRec]
	edges *slotTable[inEdgeRec]
}

// NewInAdj returns an empty InAdj container.
func NewInAdj() *InAdj {
	return &InAdj{verts: newSlotTable[inVertexRec](), edges: newSlotTable[inEdgeRec]()}
}

// Order returns |𝒱|. Complexity: O(1).
func (g *InAdj) Order() int { return g.verts.len() }

// Size returns |ℰ|. Complexity: O(1).
func (g *InAdj) Size() int { return g.edges.len() }

// InsertVert adds a vertex with no incident edges and returns its handle.
func (g *InAdj) InsertVert() VertexHandle {
	idx, gen := g.verts.insert(inVertexRec{inHead: noLink})

	return VertexHandle{idx: idx, gen: gen}
}

// InsertEdge adds an edge s->t. Precondition: s and t must be valid.
func (g *InAdj) InsertEdge(s, t VertexHandle) (EdgeHandle, error) {
	if Checked {
		if !g.verts.contains(s.idx, s.gen) {
			return NullEdge, precondition(ErrVertexNotFound)
		}
		if !g.verts.contains(t.idx, t.gen) {
			return NullEdge, precondition(ErrVertexNotFound)
		}
	}

	idx, gen := g.edges.insert(inEdgeRec{tail: s, head: t, inPrev: noLink, inNext: noLink})

	tv := g.verts.atIdx(t.idx)
	oldHead := tv.inHead
	er := g.edges.atIdx(idx)
	er.inNext = oldHead
	if oldHead != noLink {
		g.edges.atIdx(uint32(oldHead)).inPrev = int32(idx)
	}
	tv.inHead = int32(idx)

	return EdgeHandle{idx: idx, gen: gen}, nil
}

// EraseEdge removes e. Precondition: e must be valid.
func (g *InAdj) EraseEdge(e EdgeHandle) error {
	er := g.edges.get(e.idx, e.gen)
	if er == nil {
		if Checked {
			return precondition(ErrEdgeNotFound)
		}
		return nil
	}

	g.unlinkIn(e.idx, er)
	g.edges.erase(e.idx, e.gen)

	return nil
}

func (g *InAdj) unlinkIn(idx uint32, er *inEdgeRec) {
	if er.inPrev != noLink {
		g.edges.atIdx(uint32(er.inPrev)).inNext = er.inNext
	} else {
		g.verts.atIdx(er.head.idx).inHead = er.inNext
	}
	if er.inNext != noLink {
		g.edges.atIdx(uint32(er.inNext)).inPrev = er.inPrev
	}
}

// EraseVert removes v. Precondition: v must be valid and have no incoming
// edges (ErrVertexHasEdges otherwise).
func (g *InAdj) EraseVert(v VertexHandle) error {
	vr := g.verts.get(v.idx, v.gen)
	if vr == nil {
		if Checked {
			return precondition(ErrVertexNotFound)
		}
		return nil
	}
	if vr.inHead != noLink {
		if Checked {
			return precondition(ErrVertexHasEdges)
		}
		return nil
	}

	g.verts.erase(v.idx, v.gen)

	return nil
}

// Clear removes every edge and vertex.
func (g *InAdj) Clear() {
	g.verts.clear()
	g.edges.clear()
}

// Tail returns the source endpoint of e. Precondition: e must be valid.
func (g *InAdj) Tail(e EdgeHandle) VertexHandle {
	if er := g.edges.get(e.idx, e.gen); er != nil {
		return er.tail
	}

	return NullVertex
}

// Head returns the destination endpoint of e. Precondition: e must be valid.
func (g *InAdj) Head(e EdgeHandle) VertexHandle {
	if er := g.edges.get(e.idx, e.gen); er != nil {
		return er.head
	}

	return NullVertex
}

// RandomVert samples a vertex handle uniformly from 𝒱. Precondition: Order() > 0.
func (g *InAdj) RandomVert(r RandSource) (VertexHandle, error) {
	if g.verts.len() == 0 {
		if Checked {
			return NullVertex, precondition(ErrEmptyHandleSpace)
		}
		return NullVertex, nil
	}
	idx := g.verts.randomAliveIndex(r)

	return VertexHandle{idx: idx, gen: g.verts.genAt(idx)}, nil
}

// RandomEdge samples an edge handle uniformly from ℰ. Precondition: Size() > 0.
func (g *InAdj) RandomEdge(r RandSource) (EdgeHandle, error) {
	if g.edges.len() == 0 {
		if Checked {
			return NullEdge, precondition(ErrEmptyHandleSpace)
		}
		return NullEdge, nil
	}
	idx := g.edges.randomAliveIndex(r)

	return EdgeHandle{idx: idx, gen: g.edges.genAt(idx)}, nil
}

// Verts yields every currently-valid vertex handle.
func (g *InAdj) Verts() iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		for _, idx := range g.verts.alive {
			if !yield((VertexHandle{idx: idx, gen: g.verts.genAt(idx)})) {
				return
			}
		}
	}
}

// Edges yields every currently-valid edge handle.
func (g *InAdj) Edges() iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		for _, idx := range g.edges.alive {
			if !yield((EdgeHandle{idx: idx, gen: g.edges.genAt(idx)})) {
				return
			}
		}
	}
}

// InEdges yields v's incoming incident edges. Precondition: v must be valid.
// Complexity: O(deg_in(v)) to exhaust.
func (g *InAdj) InEdges(v VertexHandle) iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		vr := g.verts.get(v.idx, v.gen)
		if vr == nil {
			return
		}
		cur := vr.inHead
		for cur != noLink {
			er := g.edges.atIdx(uint32(cur))
			h := EdgeHandle{idx: uint32(cur), gen: g.edges.genAt(uint32(cur))}
			next := er.inNext
			if !yield(h) {
				return
			}
			cur = next
		}
	}
}

// ReverseView returns a zero-copy adaptor presenting an out-adjacency
// surface over g: the view's OutEdges(v) enumerates g's edges whose tail is
// v, found by an O(E) scan of g.Edges(). See reverse_view.go.
func (g *InAdj) ReverseView() OutAdjView { return OutAdjView{g: g} }
