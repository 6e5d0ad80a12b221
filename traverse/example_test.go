package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/handlegraph/core"
	"github.com/katalvlaran/handlegraph/traverse"
)

func ExampleBFS() {
	g := core.NewOutAdj()
	a := g.InsertVert()
	b := g.InsertVert()
	c := g.InsertVert()
	_, _ = g.InsertEdge(a, b)
	_, _ = g.InsertEdge(a, c)

	_, order, err := traverse.BFS(g, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("visited:", len(order))
	// Output: visited: 3
}
