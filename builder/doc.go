// Package builder provides structured and randomized construction of
// handle-based graphs: path, cycle, star, wheel, complete, grid,
// random-sparse (Erdős-Rényi), and random-regular (stub-matching) topologies.
//
// Not named by spec.md, but nothing there excludes it: the teacher always
// ships a builder package alongside its algorithms, and the algorithm
// packages (dijkstra, primtree, traverse) need realistic fixtures to run
// against in tests and examples exactly the way the teacher's own examples/
// directory uses its builder.
//
// Every constructor here targets *core.BiAdj, since handlegraph's containers
// have no Directed()/Looped()/Multigraph() mode flags the way the teacher's
// core.Graph does — these topologies are inherently "both-directions"
// relationships (a path/cycle/grid step, a star/wheel spoke, a complete-graph
// pair), so they're built directly as reciprocal edge pairs on a dual-
// direction container rather than gated behind a directedness flag.
//
// Unlike the teacher's BuildGraph, which composes many Constructors into one
// core.Graph addressed by a shared string-ID namespace, each topology here is
// a self-contained builder returning its own *Graph: a fresh *core.BiAdj, the
// handles it created (in a documented, deterministic order), an edge weight
// map, and a per-call BuildID. Handle identity is per-graph-instance and
// opaque, so the teacher's "write into a shared namespace across several
// constructors" composition has no direct analog; see DESIGN.md.
package builder
