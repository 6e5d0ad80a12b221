// File: bi_adjacency.go
// Role: BiAdj, the container tracking both incidence directions per vertex
// (spec.md §4.3 table). Combines OutAdj's and InAdj's linkage fields in one
// edge record so out_edges and in_edges are both O(deg) with no duplicated
// edge storage. erase_vert requires both outHead and inHead clear.
package core

import "iter"

type biVertexRec struct {
	outHead, inHead int32
}

type biEdgeRec struct {
	tail, head       VertexHandle
	outPrev, outNext int32
	inPrev, inNext   int32
}

// BiAdj tracks both outgoing and incoming incidence lists per vertex.
// out_edges(v) and in_edges(v) are both O(deg) in their respective
// direction. This is the only variant shortest_path/parallel_shortest_path
// (spec.md §4.6.4) operate on, since bidirectional search needs both.
type BiAdj struct {
	verts *slotTable[biVertexRec]
	edges *slotTable[biEdgeRec]
}

// NewBiAdj returns an empty BiAdj container.
func NewBiAdj() *BiAdj {
	return &BiAdj{verts: newSlotTable[biVertexRec](), edges: newSlotTable[biEdgeRec]()}
}

// Order returns |𝒱|. Complexity: O(1).
func (g *BiAdj) Order() int { return g.verts.len() }

// Size returns |ℰ|. Complexity: O(1).
func (g *BiAdj) Size() int { return g.edges.len() }

// InsertVert adds a vertex with no incident edges and returns its handle.
func (g *BiAdj) InsertVert() VertexHandle {
	idx, gen := g.verts.insert(biVertexRec{outHead: noLink, inHead: noLink})

	return VertexHandle{idx: idx, gen: gen}
}

// InsertEdge adds an edge s->t, linking it into both s's out-list and t's
// in-list. Precondition: s and t must be valid.
func (g *BiAdj) InsertEdge(s, t VertexHandle) (EdgeHandle, error) {
	if Checked {
		if !g.verts.contains(s.idx, s.gen) {
			return NullEdge, precondition(ErrVertexNotFound)
		}
		if !g.verts.contains(t.idx, t.gen) {
			return NullEdge, precondition(ErrVertexNotFound)
		}
	}

	idx, gen := g.edges.insert(biEdgeRec{
		tail: s, head: t,
		outPrev: noLink, outNext: noLink,
		inPrev: noLink, inNext: noLink,
	})

	sv := g.verts.atIdx(s.idx)
	er := g.edges.atIdx(idx)
	oldOutHead := sv.outHead
	er.outNext = oldOutHead
	if oldOutHead != noLink {
		g.edges.atIdx(uint32(oldOutHead)).outPrev = int32(idx)
	}
	sv.outHead = int32(idx)

	tv := g.verts.atIdx(t.idx)
	oldInHead := tv.inHead
	er.inNext = oldInHead
	if oldInHead != noLink {
		g.edges.atIdx(uint32(oldInHead)).inPrev = int32(idx)
	}
	tv.inHead = int32(idx)

	return EdgeHandle{idx: idx, gen: gen}, nil
}

// EraseEdge removes e from both incidence lists it participates in.
// Precondition: e must be valid.
func (g *BiAdj) EraseEdge(e EdgeHandle) error {
	er := g.edges.get(e.idx, e.gen)
	if er == nil {
		if Checked {
			return precondition(ErrEdgeNotFound)
		}
		return nil
	}

	g.unlinkOut(e.idx, er)
	g.unlinkIn(e.idx, er)
	g.edges.erase(e.idx, e.gen)

	return nil
}

func (g *BiAdj) unlinkOut(idx uint32, er *biEdgeRec) {
	if er.outPrev != noLink {
		g.edges.atIdx(uint32(er.outPrev)).outNext = er.outNext
	} else {
		g.verts.atIdx(er.tail.idx).outHead = er.outNext
	}
	if er.outNext != noLink {
		g.edges.atIdx(uint32(er.outNext)).outPrev = er.outPrev
	}
}

func (g *BiAdj) unlinkIn(idx uint32, er *biEdgeRec) {
	if er.inPrev != noLink {
		g.edges.atIdx(uint32(er.inPrev)).inNext = er.inNext
	} else {
		g.verts.atIdx(er.head.idx).inHead = er.inNext
	}
	if er.inNext != noLink {
		g.edges.atIdx(uint32(er.inNext)).inPrev = er.inPrev
	}
}

// EraseVert removes v. Precondition: v must be valid and have no edges in
// either direction (ErrVertexHasEdges otherwise).
func (g *BiAdj) EraseVert(v VertexHandle) error {
	vr := g.verts.get(v.idx, v.gen)
	if vr == nil {
		if Checked {
			return precondition(ErrVertexNotFound)
		}
		return nil
	}
	if vr.outHead != noLink || vr.inHead != noLink {
		if Checked {
			return precondition(ErrVertexHasEdges)
		}
		return nil
	}

	g.verts.erase(v.idx, v.gen)

	return nil
}

// Clear removes every edge and vertex.
func (g *BiAdj) Clear() {
	g.verts.clear()
	g.edges.clear()
}

// Tail returns the source endpoint of e. Precondition: e must be valid.
func (g *BiAdj) Tail(e EdgeHandle) VertexHandle {
	if er := g.edges.get(e.idx, e.gen); er != nil {
		return er.tail
	}

	return NullVertex
}

// Head returns the destination endpoint of e. Precondition: e must be valid.
func (g *BiAdj) Head(e EdgeHandle) VertexHandle {
	if er := g.edges.get(e.idx, e.gen); er != nil {
		return er.head
	}

	return NullVertex
}

// RandomVert samples a vertex handle uniformly from 𝒱. Precondition: Order() > 0.
func (g *BiAdj) RandomVert(r RandSource) (VertexHandle, error) {
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
func (g *BiAdj) RandomEdge(r RandSource) (EdgeHandle, error) {
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
func (g *BiAdj) Verts() iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		for _, idx := range g.verts.alive {
			if !yield((VertexHandle{idx: idx, gen: g.verts.genAt(idx)})) {
				return
			}
		}
	}
}

// Edges yields every currently-valid edge handle.
func (g *BiAdj) Edges() iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		for _, idx := range g.edges.alive {
			if !yield((EdgeHandle{idx: idx, gen: g.edges.genAt(idx)})) {
				return
			}
		}
	}
}

// OutEdges yields v's outgoing incident edges. Precondition: v must be valid.
func (g *BiAdj) OutEdges(v VertexHandle) iter.Seq[EdgeHandle] {
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

// InEdges yields v's incoming incident edges. Precondition: v must be valid.
func (g *BiAdj) InEdges(v VertexHandle) iter.Seq[EdgeHandle] {
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

// ReverseView returns a zero-copy adaptor presenting g with tail/head and
// out_edges/in_edges swapped. The result still satisfies BiCapable.
func (g *BiAdj) ReverseView() *BiAdjView { return &BiAdjView{g: g} }
