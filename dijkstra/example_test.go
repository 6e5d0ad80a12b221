package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/handlegraph/core"
	"github.com/katalvlaran/handlegraph/dijkstra"
)

// ExampleShortestPathsFrom demonstrates computing shortest paths on a small
// triangle graph using an int edge-weight map.
func ExampleShortestPathsFrom() {
	g := core.NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	c := g.InsertVert()

	weight := core.NewEdgeMap[int](0)
	ab, _ := g.InsertEdge(a, b)
	weight.Set(ab, 1)
	bc, _ := g.InsertEdge(b, c)
	weight.Set(bc, 2)
	ac, _ := g.InsertEdge(a, c)
	weight.Set(ac, 5)

	_, dist, err := dijkstra.ShortestPathsFrom(g, a, weight.Get)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist.Get(a), dist.Get(b), dist.Get(c))
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}
