// Package graph: domain types and the Graph contract shared by all backends.

package graph

import "sort"

// VertexID uniquely identifies a graph vertex. IDs are opaque to the
// contract: totally ordered, hashable, with no attached payload. A vertex
// exists exactly when it participates in at least one edge.
type VertexID int64

// DefaultEdgeWeight is applied by AddEdge when no WithWeight option is given.
const DefaultEdgeWeight = 1.0

// Edge is an immutable (From, To, Weight) record. In a directed graph
// (u, v, w) is distinct from (v, u, w); an undirected backend stores both
// directed records for one logical edge.
type Edge struct {
	// From is the source vertex.
	From VertexID

	// To is the destination vertex.
	To VertexID

	// Weight is the cost of traversing the edge.
	Weight float64
}

// Graph is the contract every storage backend implements. Consumers,
// the search engine included, query a populated graph exclusively through
// these operations and never inspect backend internals.
type Graph interface {
	// Vertices returns every vertex participating in at least one edge,
	// ascending by ID.
	Vertices() []VertexID

	// Edges returns every stored directed edge record, ascending by
	// (From, To). For undirected backends this includes both directions.
	Edges() []Edge

	// AddEdge inserts a directed edge record with DefaultEdgeWeight unless
	// overridden by WithWeight. Undirected backends atomically insert the
	// mirror record too. Returns ErrDuplicateEdge if the ordered pair (or,
	// for undirected backends, either ordering) already exists; the graph
	// is left unmodified on failure.
	AddEdge(from, to VertexID, opts ...EdgeOption) error

	// EdgesFrom returns all edges whose source is v, or ErrVertexNotFound
	// when v has never appeared in any edge (list-backed backends; the
	// matrix backend returns an empty slice instead).
	EdgesFrom(v VertexID) ([]Edge, error)

	// EdgesTo is the symmetric counterpart of EdgesFrom.
	EdgesTo(v VertexID) ([]Edge, error)

	// Directed reports whether the backend stores one record per AddEdge
	// (true) or mirrors every insertion (false).
	Directed() bool

	// ValidateUndirectedness checks that stored edges are symmetric,
	// weight for weight. Returns ErrDirectedGraph on a directed backend
	// and ErrUndirectedViolation when the invariant is broken.
	ValidateUndirectedness() error
}

// pairKey is an ordered (from, to) pair used for O(1) duplicate detection.
// Undirected backends normalize it to (min, max) so both orderings share
// one key.
type pairKey struct {
	from VertexID
	to   VertexID
}

// newPairKey builds the duplicate-detection key for a (from, to) insertion,
// normalizing when the backend is undirected.
func newPairKey(from, to VertexID, directed bool) pairKey {
	if !directed && to < from {
		from, to = to, from
	}

	return pairKey{from: from, to: to}
}

// sortEdges orders a freshly assembled edge slice ascending by (From, To).
// Backends forbid duplicate ordered pairs, so the order is total.
func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}

		return es[i].To < es[j].To
	})
}

// sortVertices orders a freshly assembled vertex slice ascending by ID.
func sortVertices(vs []VertexID) {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
}
