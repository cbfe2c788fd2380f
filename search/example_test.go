package search_test

import (
	"fmt"

	"github.com/tomssem/ai-algos/graph"
	"github.com/tomssem/ai-algos/search"
)

// ExampleSearch contrasts the hop-count-optimal breadth-first strategy with
// the weight-optimal best-first strategy on the same graph.
func ExampleSearch() {
	g := graph.NewAdjacencyListGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(1, 3, graph.WithWeight(5))

	goal := func(v graph.VertexID) bool { return v == 3 }

	bfs, _ := search.Search(g, 1, goal)
	best, _ := search.Search(g, 1, goal, search.WithStrategy(search.BestFirst))

	fmt.Println("breadth-first:", bfs.Path)
	fmt.Println("best-first:   ", best.Path, "cost", best.Cost)
	// Output:
	// breadth-first: [1 3]
	// best-first:    [1 2 3] cost 2
}

// ExampleSearchTree walks tree-shaped search state with the same engine.
func ExampleSearchTree() {
	root := search.NewVertex(1)
	left := root.AddChild(2)
	root.AddChild(3)
	left.AddChild(4)

	res, _ := search.SearchTree(root, func(v graph.VertexID) bool { return v == 4 })
	fmt.Println(res.Path)
	// Output: [1 2 4]
}
