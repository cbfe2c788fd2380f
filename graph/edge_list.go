// Package graph: edge-list backend.

package graph

import "fmt"

// EdgeListGraph stores the graph as a flat catalog of edge records plus a
// key set for O(1) duplicate detection. Neighbor queries scan the catalog.
//
// Complexity: AddEdge O(1) amortized; EdgesFrom/EdgesTo O(E);
// Vertices O(V log V); Edges O(E log E).
type EdgeListGraph struct {
	directed bool
	edges    []Edge
	seen     map[pairKey]struct{}
	vertices map[VertexID]struct{}
}

var _ Graph = (*EdgeListGraph)(nil)

// NewEdgeListGraph creates an empty edge-list backend, undirected unless
// WithDirected(true) is given.
func NewEdgeListGraph(opts ...Option) *EdgeListGraph {
	cfg := gatherOptions(opts)

	return &EdgeListGraph{
		directed: cfg.directed,
		seen:     make(map[pairKey]struct{}),
		vertices: make(map[VertexID]struct{}),
	}
}

// Directed reports whether this instance stores one record per AddEdge.
func (g *EdgeListGraph) Directed() bool { return g.directed }

// AddEdge appends the edge record (and its mirror when undirected) after
// the duplicate check. The catalog is untouched on failure.
func (g *EdgeListGraph) AddEdge(from, to VertexID, opts ...EdgeOption) error {
	key := newPairKey(from, to, g.directed)
	if _, dup := g.seen[key]; dup {
		return fmt.Errorf("%w: %d->%d", ErrDuplicateEdge, from, to)
	}

	e := newEdge(from, to, opts)
	g.seen[key] = struct{}{}
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.edges = append(g.edges, e)
	if !g.directed && from != to {
		g.edges = append(g.edges, Edge{From: to, To: from, Weight: e.Weight})
	}

	return nil
}

// Vertices returns all edge endpoints, ascending.
func (g *EdgeListGraph) Vertices() []VertexID {
	out := make([]VertexID, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sortVertices(out)

	return out
}

// Edges returns a copy of the catalog, ascending by (From, To).
func (g *EdgeListGraph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	sortEdges(out)

	return out
}

// EdgesFrom returns all records with source v in insertion order, or
// ErrVertexNotFound if v never appeared in any edge.
func (g *EdgeListGraph) EdgesFrom(v VertexID) ([]Edge, error) {
	if _, ok := g.vertices[v]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	out := make([]Edge, 0)
	for _, e := range g.edges {
		if e.From == v {
			out = append(out, e)
		}
	}

	return out, nil
}

// EdgesTo returns all records with destination v in insertion order, or
// ErrVertexNotFound if v never appeared in any edge.
func (g *EdgeListGraph) EdgesTo(v VertexID) ([]Edge, error) {
	if _, ok := g.vertices[v]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	out := make([]Edge, 0)
	for _, e := range g.edges {
		if e.To == v {
			out = append(out, e)
		}
	}

	return out, nil
}

// ValidateUndirectedness checks the mirror invariant over the catalog.
// On-demand consistency check; AddEdge already enforces the mirror insert.
func (g *EdgeListGraph) ValidateUndirectedness() error {
	if g.directed {
		return ErrDirectedGraph
	}

	return validateMirrored(g.edges)
}
