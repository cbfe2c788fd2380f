// Package search provides goal-directed traversal over any graph.Graph.
//
// The engine is a state machine over three states: frontier-nonempty,
// goal-found (terminal) and frontier-exhausted (terminal). Each step pops
// the next vertex from a pluggable frontier; if it satisfies the goal
// predicate the path is reconstructed from recorded predecessor links,
// otherwise the vertex is expanded through Graph.EdgesFrom and each
// eligible neighbor is pushed.
//
// The expansion order is exchanged through the Strategy option:
//
//	BreadthFirst - FIFO frontier; hop-count-optimal paths.
//	DepthFirst   - LIFO frontier.
//	BestFirst    - min-priority frontier over cumulative edge weight;
//	               weight-optimal paths on non-negative weights, with ties
//	               broken by insertion order for reproducible results.
//
// An unreachable goal is not an error: the engine terminates with
// Result.Found == false. Malformed input (a nil graph, a nil goal
// predicate, a start vertex absent from the graph) is reported through
// sentinel errors before any traversal begins.
//
// The engine only issues read queries against the supplied graph and owns
// its frontier, visited set and predecessor map exclusively for the
// duration of one search.
//
// The package also owns Vertex, an explicit-children tree node for
// tree-shaped search state, walked by SearchTree through the same engine.
package search
