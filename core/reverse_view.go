// File: reverse_view.go
// Role: zero-copy reverse adaptors (spec.md §4.4).
//
// None of these types copy a single slot or edge record. Each wraps a
// pointer to the underlying concrete graph. BiAdjView relabels "out" vs
// "in" (its OutEdges calls the wrapped BiAdj's InEdges, and so on);
// InAdjView and OutAdjView expose the direction their wrapped graph does
// not track by scanning its Edges(). Handles returned through a view are
// exactly the underlying graph's handles — a handle obtained via a view works directly against the
// graph it wraps, and vice versa.
//
// Views are read-only: no InsertEdge/EraseEdge method exists on any of the
// three view types, matching spec.md §4.4's "no insertions/erasures via the
// view in this core."
package core

import "iter"

// InAdjView presents an *OutAdj as an in-adjacency-capable graph: its
// InEdges(v) enumerates exactly {e : head(e) = v} of the wrapped graph, its
// Tail/Head are unchanged (the endpoints themselves don't swap — only which
// incidence direction is queryable by v does).
type InAdjView struct {
	g *OutAdj
}

// Order returns the wrapped graph's vertex count.
func (v InAdjView) Order() int { return v.g.Order() }

// Verts yields the wrapped graph's vertex handles.
func (v InAdjView) Verts() iter.Seq[VertexHandle] { return v.g.Verts() }

// Edges yields the wrapped graph's edge handles.
func (v InAdjView) Edges() iter.Seq[EdgeHandle] { return v.g.Edges() }

// Tail returns the wrapped graph's Tail(e).
func (v InAdjView) Tail(e EdgeHandle) VertexHandle { return v.g.Tail(e) }

// Head returns the wrapped graph's Head(e).
func (v InAdjView) Head(e EdgeHandle) VertexHandle { return v.g.Head(e) }

// InEdges enumerates edges of the wrapped OutAdj whose head is v — exactly
// what the underlying container cannot answer directly in O(deg), which is
// the entire reason to reach for a view instead of scanning Edges().
//
// Implementation note: OutAdj tracks no incoming-edge linkage, so
// InAdjView over an OutAdj has no O(deg_in) path; InEdges here is an O(E)
// scan over the wrapped graph's Edges(), filtering by Head. The teacher's own InducedSubgraph/UnweightedView (core/view.go) accept
// O(V+E) cost for a derived view; this is the same tradeoff, paid only by
// callers who chose to reverse an out-only container instead of building a
// BiAdj to begin with.
func (v InAdjView) InEdges(h VertexHandle) iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		for e := range v.g.Edges() {
			if v.g.Head(e) == h {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// ReverseView undoes the reversal, returning the original *OutAdj.
func (v InAdjView) ReverseView() *OutAdj { return v.g }

// OutAdjView presents an *InAdj as an out-adjacency-capable graph; the
// out-vs-in mirror of InAdjView.
type OutAdjView struct {
	g *InAdj
}

// Order returns the wrapped graph's vertex count.
func (v OutAdjView) Order() int { return v.g.Order() }

// Verts yields the wrapped graph's vertex handles.
func (v OutAdjView) Verts() iter.Seq[VertexHandle] { return v.g.Verts() }

// Edges yields the wrapped graph's edge handles.
func (v OutAdjView) Edges() iter.Seq[EdgeHandle] { return v.g.Edges() }

// Tail returns the wrapped graph's Tail(e).
func (v OutAdjView) Tail(e EdgeHandle) VertexHandle { return v.g.Tail(e) }

// Head returns the wrapped graph's Head(e).
func (v OutAdjView) Head(e EdgeHandle) VertexHandle { return v.g.Head(e) }

// OutEdges enumerates edges of the wrapped InAdj whose tail is v. As with
// InAdjView.InEdges, the wrapped container tracks the opposite direction, so
// this is an O(E) scan — the cost of reversing an in-only container instead
// of building a BiAdj.
func (v OutAdjView) OutEdges(h VertexHandle) iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		for e := range v.g.Edges() {
			if v.g.Tail(e) == h {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// ReverseView undoes the reversal, returning the original *InAdj.
func (v OutAdjView) ReverseView() *InAdj { return v.g }

// BiAdjView presents a *BiAdj with tail/head and out_edges/in_edges swapped,
// at zero cost: since BiAdj already tracks both directions, the view simply
// calls the wrapped graph's InEdges where a BiCapable caller expects
// OutEdges, and vice versa. Unlike InAdjView/OutAdjView this has no O(E)
// fallback — both directions are already O(deg) on the underlying BiAdj.
type BiAdjView struct {
	g *BiAdj
}

// Order returns the wrapped graph's vertex count.
func (v *BiAdjView) Order() int { return v.g.Order() }

// Verts yields the wrapped graph's vertex handles.
func (v *BiAdjView) Verts() iter.Seq[VertexHandle] { return v.g.Verts() }

// Edges yields the wrapped graph's edge handles.
func (v *BiAdjView) Edges() iter.Seq[EdgeHandle] { return v.g.Edges() }

// Tail returns the wrapped graph's Head(e) — the view swaps endpoints.
func (v *BiAdjView) Tail(e EdgeHandle) VertexHandle { return v.g.Head(e) }

// Head returns the wrapped graph's Tail(e) — the view swaps endpoints.
func (v *BiAdjView) Head(e EdgeHandle) VertexHandle { return v.g.Tail(e) }

// OutEdges returns the wrapped graph's InEdges(v): edges whose (swapped)
// tail is v are exactly the wrapped graph's edges whose original head is v.
func (v *BiAdjView) OutEdges(h VertexHandle) iter.Seq[EdgeHandle] { return v.g.InEdges(h) }

// InEdges returns the wrapped graph's OutEdges(v).
func (v *BiAdjView) InEdges(h VertexHandle) iter.Seq[EdgeHandle] { return v.g.OutEdges(h) }

// ReverseView undoes the reversal, returning the original *BiAdj.
func (v *BiAdjView) ReverseView() *BiAdj { return v.g }
