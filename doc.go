// Package aialgos is a substrate for generic path-search: one Graph
// contract over three interchangeable storage backends, and a frontier
// driven search engine with exchangeable expansion strategies.
//
// Everything is organized under three subpackages:
//
//	graph/   - Edge, VertexID, the Graph contract, and the edge-list,
//	           adjacency-list and adjacency-matrix backends with their
//	           directed/undirected behavior and invariant validation
//	search/  - the goal-directed engine: breadth-first, depth-first and
//	           best-first expansion over any Graph, plus tree-shaped
//	           search state (Vertex) walked by the same engine
//	graphio/ - YAML save/load keyed by backend name
//
// Quick example:
//
//	g := graph.NewAdjacencyListGraph()
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 3)
//	g.AddEdge(1, 3, graph.WithWeight(5))
//
//	res, err := search.Search(g, 1, func(v graph.VertexID) bool { return v == 3 },
//	    search.WithStrategy(search.BestFirst))
//	// res.Path == [1 2 3], res.Cost == 2
package aialgos
