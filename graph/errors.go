// Package graph: sentinel error set.
//
// Every message carries the "graph: " prefix for grep-ability. Backends wrap
// these sentinels with fmt.Errorf("...: %w", ...) to attach the offending
// vertex or edge; callers match with errors.Is.

package graph

import "errors"

var (
	// ErrDuplicateEdge indicates an AddEdge whose ordered (from, to) key,
	// or either ordering of it on an undirected backend, already exists.
	// The graph is left unmodified.
	ErrDuplicateEdge = errors.New("graph: edge already present")

	// ErrVertexNotFound indicates a neighbor query against a vertex that has
	// never appeared in any edge. Returned by the list-backed backends only;
	// the matrix backend reports an empty result instead.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrUndirectedViolation indicates that ValidateUndirectedness found a
	// stored edge whose mirror is missing or carries a different weight.
	ErrUndirectedViolation = errors.New("graph: undirectedness invariant violated")

	// ErrDirectedGraph indicates ValidateUndirectedness was invoked on a
	// backend constructed with WithDirected(true).
	ErrDirectedGraph = errors.New("graph: graph is directed")

	// ErrVertexRange indicates a negative vertex ID was passed to the
	// adjacency-matrix backend, whose grid is indexed by ID.
	ErrVertexRange = errors.New("graph: vertex id out of range")
)
