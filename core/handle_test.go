package core

import "testing"

func TestNullHandlesAreZeroValue(t *testing.T) {
	var v VertexHandle
	var e EdgeHandle

	if !v.IsNull() || v != NullVertex {
		t.Errorf("zero-value VertexHandle must equal NullVertex")
	}
	if !e.IsNull() || e != NullEdge {
		t.Errorf("zero-value EdgeHandle must equal NullEdge")
	}
}

func TestHandleIsNullAfterInsert(t *testing.T) {
	g := NewOutAdj()
	v := g.InsertVert()
	if v.IsNull() {
		t.Fatalf("a freshly inserted vertex must not be null")
	}
}

func TestVertexHandleLess(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()

	if !a.Less(b) {
		t.Errorf("expected first-inserted handle to sort before the second")
	}
	if b.Less(a) && a.Less(b) {
		t.Errorf("Less must not be symmetric for distinct handles")
	}
}

func TestHandleStringOnNull(t *testing.T) {
	if NullVertex.String() != "V#null" {
		t.Errorf("NullVertex.String() = %q, want V#null", NullVertex.String())
	}
	if NullEdge.String() != "E#null" {
		t.Errorf("NullEdge.String() = %q, want E#null", NullEdge.String())
	}
}

func TestStaleHandleAfterErase(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	if err := g.EraseVert(a); err != nil {
		t.Fatalf("EraseVert: %v", err)
	}
	b := g.InsertVert()

	if a.IsNull() {
		t.Fatalf("erased handle should still compare non-null by value")
	}
	if a == b {
		t.Fatalf("reused slot must not equal the stale handle once its generation bumps")
	}
}
