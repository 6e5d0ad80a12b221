package builder

import "github.com/katalvlaran/handlegraph/core"

// Graph is the result of a single topology builder call: the constructed
// container, the handles it created (in the order documented by that
// builder), the edge weight map populated via the resolved WeightFn, and a
// BuildID correlating this call across logs when a caller runs many builds
// (e.g. repeated RandomSparse fixtures in a test loop).
type Graph struct {
	G       *core.BiAdj
	Verts   []core.VertexHandle
	Weight  *core.EdgeMap[float64]
	BuildID string
}

// newGraph allocates the shared scaffolding every topology builder starts
// from: an empty container, a zero-valued weight map, and a fresh BuildID.
func newGraph() *Graph {
	return &Graph{
		G:       core.NewBiAdj(),
		Weight:  core.NewEdgeMap[float64](0),
		BuildID: newBuildID(),
	}
}

// addReciprocalEdge inserts u->v and v->u (unless u==v, in which case a
// single self-loop edge is inserted once), recording the weight cfg.weightFn
// produces for the pair on both directions. This is the handle-graph
// translation of the teacher's "add u->v, then mirror v->u if g.Directed()"
// pattern — here always mirrored, since BiAdj has no undirected mode and
// every topology built from this package is a symmetric relationship.
func addReciprocalEdge(gr *Graph, cfg *builderConfig, u, v core.VertexHandle) error {
	w := cfg.weightFn(cfg.rng)

	e1, err := gr.G.InsertEdge(u, v)
	if err != nil {
		return err
	}
	gr.Weight.Set(e1, w)

	if u == v {
		return nil
	}

	e2, err := gr.G.InsertEdge(v, u)
	if err != nil {
		return err
	}
	gr.Weight.Set(e2, w)

	return nil
}
