// Package primtree computes a minimum-weight spanning tree restricted to the
// component reachable from (or reaching) a given root, over any handle-based
// graph container exposing the out- or in-adjacency capability.
//
// Unlike the teacher's prim_kruskal package, which requires the whole graph
// to be connected and fails with ErrDisconnected otherwise, spec.md scopes
// this operation to "the component reachable from s" — a graph with
// unreachable vertices is not an error, those vertices are simply absent
// from the returned tree.
//
// Algorithm: Prim's, restricted to the reachable component: a frontier heap
// of candidate edges leaving the current tree, grown one vertex at a time.
// Because the frontier only ever contains edges whose tail is already in
// the tree, the cut-property invariant (the tree is a minimum spanning tree
// of its own vertex set) falls out of the algorithm's structure rather than
// needing a separate check.
//
// Complexity: O(E log V) time, O(V + E) space — same bound as the teacher's
// prim_kruskal.Prim; gods' trees/binaryheap replaces container/heap.
package primtree
