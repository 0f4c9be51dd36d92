package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/shipwright/core"
	"github.com/katalvlaran/shipwright/prim_kruskal"
)

// ExampleKruskal shows the corridor plan for four rooms: two share a wall,
// the others are joined by proximity edges ordered by spine distance first.
func ExampleKruskal() {
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1, core.Adjacent())
	_ = g.AddEdge(1, 2, core.Weighted(2, 9))
	_ = g.AddEdge(0, 2, core.Weighted(3, 4))
	_ = g.AddEdge(2, 3, core.Weighted(6, 5))
	_ = g.AddEdge(1, 3, core.Weighted(7, 1))

	edges, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range edges {
		fmt.Println(e)
	}
	// Output:
	// 0-1:adjacent
	// 1-2:weighted(2.000, 9.000)
	// 2-3:weighted(6.000, 5.000)
}

// ExamplePrim grows the same pentagon from vertex 0 and reports edges in
// acceptance order.
func ExamplePrim() {
	g := core.NewGraph(5)
	_ = g.AddEdge(0, 1, core.Weighted(0, 1))
	_ = g.AddEdge(0, 4, core.Weighted(0, 12))
	_ = g.AddEdge(1, 2, core.Weighted(0, 2))
	_ = g.AddEdge(2, 3, core.Weighted(0, 3))
	_ = g.AddEdge(3, 4, core.Weighted(0, 5))

	edges, err := prim_kruskal.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: 0-1 1-2 2-3 3-4
}

// ExampleCompute selects Prim through options and counts the trees of a
// disconnected graph.
func ExampleCompute() {
	g := core.NewGraph(5)
	_ = g.AddEdge(0, 1, core.Adjacent())
	_ = g.AddEdge(3, 4, core.Weighted(1, 1))

	opts := prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(3))
	forest, err := prim_kruskal.Compute(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("edges:", len(forest), "trees:", prim_kruskal.Components(5, forest))
	// Output: edges: 2 trees: 3
}
