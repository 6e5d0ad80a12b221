package core

import "testing"

func TestVertMap_DefaultAndSet(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()

	m := NewVertMap[string]("")
	if got := m.Get(a); got != "" {
		t.Errorf("Get on unwritten handle = %q, want empty default", got)
	}

	m.Set(a, "alpha")
	if got := m.Get(a); got != "alpha" {
		t.Errorf("Get(a) = %q, want alpha", got)
	}
	if got := m.Get(b); got != "" {
		t.Errorf("Get(b) = %q, want empty default (unwritten)", got)
	}
}

func TestVertMap_ReusedIndexReadsAsDefault(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	m := NewVertMap[int](-1)
	m.Set(a, 42)

	if err := g.EraseVert(a); err != nil {
		t.Fatalf("EraseVert: %v", err)
	}
	b := g.InsertVert() // may reuse a's slot index with a bumped generation

	if got := m.Get(b); got != -1 {
		t.Errorf("Get(b) on a reused slot = %d, want default -1 (map never saw b's generation)", got)
	}
}

func TestVertMap_GenerationZeroHandleReadsDefault(t *testing.T) {
	g := NewOutAdj()
	v1 := g.InsertVert() // idx=1, gen=0 — never written through m
	v2 := g.InsertVert() // idx=2, gen=0

	m := NewVertMap[int](99)
	m.Set(v2, 7) // grows stamp[] past v1.idx, leaving stamp[1] zero-initialized

	if got := m.Get(v1); got != 99 {
		t.Errorf("Get(v1) on an untouched generation-0 handle = %d, want default 99", got)
	}
}

func TestVertMap_Ref(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	m := NewVertMap[int](10)

	ptr := m.Ref(a)
	if *ptr != 10 {
		t.Fatalf("Ref(a) initial value = %d, want default 10", *ptr)
	}
	*ptr += 5
	if got := m.Get(a); got != 15 {
		t.Errorf("Get(a) after Ref mutation = %d, want 15", got)
	}
}

func TestEdgeMap_DefaultAndSet(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	e, _ := g.InsertEdge(a, b)

	m := NewEdgeMap[float64](0)
	if got := m.Get(e); got != 0 {
		t.Errorf("Get(e) unwritten = %v, want 0", got)
	}
	m.Set(e, 3.5)
	if got := m.Get(e); got != 3.5 {
		t.Errorf("Get(e) = %v, want 3.5", got)
	}
}

func TestEdgeMap_Ref(t *testing.T) {
	g := NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	e, _ := g.InsertEdge(a, b)

	m := NewEdgeMap[int](1)
	ptr := m.Ref(e)
	*ptr *= 10
	if got := m.Get(e); got != 10 {
		t.Errorf("Get(e) after Ref mutation = %d, want 10", got)
	}
}
