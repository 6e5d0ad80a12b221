// File: rooted_tree.go
// Role: RootedTree, the result type shared by shortest_paths_from/to and
// minimum_tree_reachable_from/reaching_to (spec.md §4.5).
//
// A RootedTree is built once, by a rootedTreeBuilder, and is immutable
// afterward — mirrors the teacher's BFSResult (bfs/types.go), which is also
// a plain data bag filled by one algorithm pass and read-only to callers.
package core

// RootedTree maps each vertex reachable from (out-rooted) or reaching
// (in-rooted) its root to the tree edge connecting it one step closer to
// the root. Both InEdgeOrNull and OutEdgeOrNull are always present; an
// out-rooted tree's "natural" accessor is InEdgeOrNull (the edge pointing
// into v from its parent), an in-rooted tree's is OutEdgeOrNull (the edge
// pointing out of v toward its parent) — callers use whichever matches the
// tree's documented orientation.
type RootedTree struct {
	root    VertexHandle
	inbound bool // true: orientation is out-rooted (tree edges point into v)
	edge    map[VertexHandle]EdgeHandle
}

// Root returns the tree's root vertex.
func (t *RootedTree) Root() VertexHandle { return t.root }

// InTree reports whether v is reachable from (out-rooted) or reaches
// (in-rooted) the root along tree edges — i.e. whether v is the root or has
// a recorded tree edge.
func (t *RootedTree) InTree(v VertexHandle) bool {
	if v == t.root {
		return true
	}
	_, ok := t.edge[v]

	return ok
}

// InEdgeOrNull returns the tree edge e with head(e) = v, for an out-rooted
// tree, or NullEdge if v is the root or unreached.
func (t *RootedTree) InEdgeOrNull(v VertexHandle) EdgeHandle {
	if e, ok := t.edge[v]; ok {
		return e
	}

	return NullEdge
}

// OutEdgeOrNull returns the tree edge e with tail(e) = v, for an in-rooted
// tree, or NullEdge if v is the root or unreached.
func (t *RootedTree) OutEdgeOrNull(v VertexHandle) EdgeHandle {
	if e, ok := t.edge[v]; ok {
		return e
	}

	return NullEdge
}

// rootedTreeBuilder accumulates (vertex, tree-edge) pairs during a single
// algorithm pass (Dijkstra, Prim) and finalizes into an immutable
// *RootedTree. Not exported: algorithm packages construct one via
// NewRootedTreeBuilder and never expose it to their own callers.
type rootedTreeBuilder struct {
	root VertexHandle
	edge map[VertexHandle]EdgeHandle
}

// NewRootedTreeBuilder starts a builder rooted at root.
func NewRootedTreeBuilder(root VertexHandle) *rootedTreeBuilder {
	return &rootedTreeBuilder{root: root, edge: make(map[VertexHandle]EdgeHandle)}
}

// SetTreeEdge records that v's tree edge (toward the root) is e. Called once
// per non-root in-tree vertex by the owning algorithm.
func (b *rootedTreeBuilder) SetTreeEdge(v VertexHandle, e EdgeHandle) {
	b.edge[v] = e
}

// Build finalizes the tree. inbound selects which accessor is the "natural"
// one for documentation purposes only; both remain callable regardless.
func (b *rootedTreeBuilder) Build(inbound bool) *RootedTree {
	return &RootedTree{root: b.root, inbound: inbound, edge: b.edge}
}
