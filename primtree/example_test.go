package primtree_test

import (
	"fmt"

	"github.com/katalvlaran/handlegraph/core"
	"github.com/katalvlaran/handlegraph/primtree"
)

func ExampleMinimumTreeReachableFrom() {
	g := core.NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	c := g.InsertVert()

	weight := core.NewEdgeMap[int](0)
	ab, _ := g.InsertEdge(a, b)
	ac, _ := g.InsertEdge(a, c)
	cb, _ := g.InsertEdge(c, b)
	weight.Set(ab, 5)
	weight.Set(ac, 1)
	weight.Set(cb, 1)

	tree := primtree.MinimumTreeReachableFrom(g, a, weight.Get)

	total := 0
	for _, v := range []core.VertexHandle{a, b, c} {
		if e := tree.InEdgeOrNull(v); !e.IsNull() {
			total += weight.Get(e)
		}
	}
	fmt.Println("total weight:", total)
	// Output: total weight: 2
}
