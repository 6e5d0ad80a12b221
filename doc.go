// Package handlegraph is a generic, handle-based directed-graph container
// library for Go.
//
// Vertices and edges are identified by opaque, generational handles
// (VertexHandle, EdgeHandle) rather than caller-chosen keys: a handle from a
// destroyed slot never collides with a handle minted later into the same
// slot. Properties live in external dense maps (VertMap[T], EdgeMap[T])
// keyed by handle, keeping the container itself free of user payload types.
//
// Subpackages:
//
//	core/      — VertexHandle/EdgeHandle, OutAdj/InAdj/BiAdj containers,
//	             VertMap[T]/EdgeMap[T], RootedTree
//	dijkstra/  — single-source shortest paths, forward and reversed, plus a
//	             two-goroutine ParallelShortestPath meeting-in-the-middle variant
//	primtree/  — minimum spanning tree restricted to the reachable/reaching
//	             subgraph from a given root
//	traverse/  — BFS and DFS over core.OutCapable, with functional-option
//	             hooks and a *core.RootedTree result
//	builder/   — structured and randomized topology constructors (path,
//	             cycle, star, wheel, complete, grid, random-sparse, random-regular)
package handlegraph
