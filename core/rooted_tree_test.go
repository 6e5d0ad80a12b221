package core

import "testing"

func TestRootedTreeBuilder_OutRooted(t *testing.T) {
	g := NewOutAdj()
	root := g.InsertVert()
	a := g.InsertVert()
	b := g.InsertVert()
	eRootA, _ := g.InsertEdge(root, a)
	eAB, _ := g.InsertEdge(a, b)

	builder := NewRootedTreeBuilder(root)
	builder.SetTreeEdge(a, eRootA)
	builder.SetTreeEdge(b, eAB)
	tree := builder.Build(true)

	if tree.Root() != root {
		t.Errorf("Root() = %v, want %v", tree.Root(), root)
	}
	if !tree.InTree(root) || !tree.InTree(a) || !tree.InTree(b) {
		t.Errorf("InTree should hold for root and every vertex given a tree edge")
	}
	if tree.InEdgeOrNull(a) != eRootA {
		t.Errorf("InEdgeOrNull(a) = %v, want %v", tree.InEdgeOrNull(a), eRootA)
	}
	if tree.InEdgeOrNull(b) != eAB {
		t.Errorf("InEdgeOrNull(b) = %v, want %v", tree.InEdgeOrNull(b), eAB)
	}
	if tree.InEdgeOrNull(root) != NullEdge {
		t.Errorf("InEdgeOrNull(root) = %v, want NullEdge", tree.InEdgeOrNull(root))
	}
}

func TestRootedTree_UnreachedVertex(t *testing.T) {
	g := NewOutAdj()
	root := g.InsertVert()
	unreached := g.InsertVert()

	tree := NewRootedTreeBuilder(root).Build(true)
	if tree.InTree(unreached) {
		t.Errorf("InTree(unreached) = true, want false")
	}
	if tree.InEdgeOrNull(unreached) != NullEdge {
		t.Errorf("InEdgeOrNull(unreached) = %v, want NullEdge", tree.InEdgeOrNull(unreached))
	}
	if tree.OutEdgeOrNull(unreached) != NullEdge {
		t.Errorf("OutEdgeOrNull(unreached) = %v, want NullEdge", tree.OutEdgeOrNull(unreached))
	}
}
