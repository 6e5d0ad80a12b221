package core

import (
	"errors"
	"testing"
)

func TestOutAdj_InsertAndOutEdges(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	c := g.InsertVert()

	e1, err := g.InsertEdge(a, b)
	if err != nil {
		t.Fatalf("InsertEdge: %v", err)
	}
	e2, err := g.InsertEdge(a, c)
	if err != nil {
		t.Fatalf("InsertEdge: %v", err)
	}

	if g.Order() != 3 || g.Size() != 2 {
		t.Fatalf("Order=%d Size=%d, want 3,2", g.Order(), g.Size())
	}

	heads := map[VertexHandle]bool{}
	n := 0
	for e := range g.OutEdges(a) {
		heads[g.Head(e)] = true
		n++
	}
	if n != 2 || !heads[b] || !heads[c] {
		t.Errorf("OutEdges(a) did not yield exactly {b, c}")
	}
	if g.Tail(e1) != a || g.Tail(e2) != a {
		t.Errorf("Tail mismatch")
	}

	n = 0
	for range g.OutEdges(b) {
		n++
	}
	if n != 0 {
		t.Errorf("OutEdges(b) should be empty, got %d", n)
	}
}

func TestOutAdj_SelfLoopAndParallelEdgesAllowed(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()

	if _, err := g.InsertEdge(a, a); err != nil {
		t.Fatalf("self-loop should be allowed: %v", err)
	}
	if _, err := g.InsertEdge(a, a); err != nil {
		t.Fatalf("parallel self-loop should be allowed: %v", err)
	}
	if g.Size() != 2 {
		t.Fatalf("Size=%d, want 2", g.Size())
	}
}

func TestOutAdj_EraseVertRefusedWithEdges(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	if _, err := g.InsertEdge(a, b); err != nil {
		t.Fatalf("InsertEdge: %v", err)
	}

	err := g.EraseVert(a)
	if !errors.Is(err, ErrVertexHasEdges) {
		t.Fatalf("EraseVert(a) error = %v, want ErrVertexHasEdges", err)
	}

	if err := g.EraseVert(b); err != nil {
		t.Fatalf("EraseVert(b) (no outgoing edges) should succeed: %v", err)
	}
}

func TestOutAdj_EraseEdgeUnlinks(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	c := g.InsertVert()
	e1, _ := g.InsertEdge(a, b)
	_, _ = g.InsertEdge(a, c)

	if err := g.EraseEdge(e1); err != nil {
		t.Fatalf("EraseEdge: %v", err)
	}

	n := 0
	for e := range g.OutEdges(a) {
		if g.Head(e) != c {
			t.Errorf("remaining edge should point to c")
		}
		n++
	}
	if n != 1 {
		t.Errorf("OutEdges(a) after erase: got %d, want 1", n)
	}
}

func TestOutAdj_InvalidHandlePrecondition(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	_ = g.EraseVert(a)

	_, err := g.InsertEdge(a, a)
	if !errors.Is(err, ErrVertexNotFound) {
		t.Fatalf("InsertEdge on erased vertex: error = %v, want ErrVertexNotFound", err)
	}
}

func TestOutAdj_Clear(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	_, _ = g.InsertEdge(a, b)

	g.Clear()
	if g.Order() != 0 || g.Size() != 0 {
		t.Fatalf("Clear left Order=%d Size=%d, want 0,0", g.Order(), g.Size())
	}
}

func TestOutAdj_RandomVertEmpty(t *testing.T) {
	g := NewOutAdj()
	_, err := g.RandomVert(nil)
	if !errors.Is(err, ErrEmptyHandleSpace) {
		t.Fatalf("RandomVert on empty graph: error = %v, want ErrEmptyHandleSpace", err)
	}
}

func TestOutAdj_ReverseView(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	e, _ := g.InsertEdge(a, b)

	view := g.ReverseView()
	n := 0
	for got := range view.InEdges(b) {
		if got != e {
			t.Errorf("view.InEdges(b) yielded %v, want %v", got, e)
		}
		n++
	}
	if n != 1 {
		t.Errorf("view.InEdges(b) count = %d, want 1", n)
	}
	if view.ReverseView() != g {
		t.Errorf("ReverseView().ReverseView() must return the original graph")
	}
}
