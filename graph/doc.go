// Package graph provides three interchangeable storage backends for
// weighted directed and undirected graphs behind a single Graph contract:
//
//	EdgeListGraph        - flat edge catalog; O(1) duplicate check, O(E) neighbor queries.
//	AdjacencyListGraph   - per-vertex neighbor lists; O(1) duplicate check, O(degree) outgoing queries.
//	AdjacencyMatrixGraph - dense V×V grid; O(1) duplicate check, O(V) neighbor queries, O(V²) space.
//
// Vertices are integer identifiers (VertexID); a vertex exists exactly when
// it participates in at least one edge. Edges are immutable (from, to, weight)
// triples with a default weight of 1; directedness is chosen per instance with
// WithDirected. An undirected backend materializes the mirror record on every
// AddEdge and treats (u,v) and (v,u) as the same key for duplicate detection.
//
// ChildrenOf and ParentsOf project the neighbor queries down to
// (vertex, weight) pairs for callers that do not need full edge records;
// they work against any Graph implementation.
//
// Enumeration is deterministic: Vertices() ascending by ID, Edges() ascending
// by (From, To). Returned slices are fresh copies; callers cannot reach
// internal storage through them.
//
// Backends diverge in two documented places:
//
//   - EdgesFrom/EdgesTo on a vertex absent from a list-backed graph return
//     ErrVertexNotFound, while the matrix backend returns an empty result:
//     its vertex set is derived from the grid, not tracked.
//   - The matrix backend indexes its grid by vertex ID directly and therefore
//     rejects negative IDs with ErrVertexRange; list backends accept any ID.
//
// No backend is safe for concurrent mutation. Read queries may run in
// parallel with each other, but callers must serialize AddEdge externally.
//
// Errors are package-level sentinels; match them with errors.Is.
package graph
