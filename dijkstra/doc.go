// Package dijkstra computes single-source and single-pair shortest paths
// over handle-based graph containers: ShortestPathsFrom takes any
// core.OutCapable, ShortestPathsTo any core.InCapable, and the single-pair
// queries take a *core.BiAdj.
//
// Overview:
//
//   - ShortestPathsFrom/ShortestPathsTo compute a rooted shortest-path tree
//     from (or to) one source over every vertex reachable in that direction.
//   - ShortestPath/ParallelShortestPath answer a single source-target query.
//     ShortestPath terminates as soon as the target is finalized;
//     ParallelShortestPath runs a full forward pass from the source and a
//     full backward pass from the target concurrently, then joins them at
//     the best meeting vertex.
//   - Weights are supplied by the caller as a WeightFunc[W], not stored on
//     the graph — any core.EdgeMap[W].Get method value, or a plain closure
//     over some other weight source, satisfies it.
//
// Complexity: O((V + E) log V) time, O(V + E) space, identical to the
// teacher's original package; gods' trees/binaryheap replaces
// container/heap as the decrease-key queue, under the same lazy
// "push duplicate, skip stale pop" discipline the teacher documents.
//
// Error handling: ErrNegativeWeight is returned (in Checked builds) from a
// fast O(E) pre-scan before any relaxation begins, exactly as the teacher's
// package does it, rather than failing mid-algorithm.
//
// Thread safety: a single call is not safe to run concurrently with a
// mutation of g, matching core's single-threaded-per-container contract.
// ParallelShortestPath's internal goroutines are an implementation detail;
// the call itself is still synchronous and exposes no concurrency to the
// caller.
package dijkstra
