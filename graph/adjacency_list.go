// Package graph: adjacency-list backend.

package graph

import "fmt"

// halfEdge is the stored half of an edge record: the destination and the
// weight. The source is the adjacency key.
type halfEdge struct {
	to     VertexID
	weight float64
}

// AdjacencyListGraph maps each vertex to the ordered sequence of its
// outgoing (neighbor, weight) pairs, with a key set for O(1) duplicate
// detection. Every endpoint owns a bucket, so vertex membership is a map
// lookup even for sink vertices.
//
// Complexity: AddEdge O(1) amortized; EdgesFrom O(degree);
// EdgesTo O(V + E); Vertices O(V log V); Edges O(E log E).
type AdjacencyListGraph struct {
	directed bool
	adj      map[VertexID][]halfEdge
	seen     map[pairKey]struct{}
}

var _ Graph = (*AdjacencyListGraph)(nil)

// NewAdjacencyListGraph creates an empty adjacency-list backend, undirected
// unless WithDirected(true) is given.
func NewAdjacencyListGraph(opts ...Option) *AdjacencyListGraph {
	cfg := gatherOptions(opts)

	return &AdjacencyListGraph{
		directed: cfg.directed,
		adj:      make(map[VertexID][]halfEdge),
		seen:     make(map[pairKey]struct{}),
	}
}

// Directed reports whether this instance stores one record per AddEdge.
func (g *AdjacencyListGraph) Directed() bool { return g.directed }

// AddEdge appends to from's neighbor list (and to's when undirected)
// after the duplicate check. The adjacency is untouched on failure.
func (g *AdjacencyListGraph) AddEdge(from, to VertexID, opts ...EdgeOption) error {
	key := newPairKey(from, to, g.directed)
	if _, dup := g.seen[key]; dup {
		return fmt.Errorf("%w: %d->%d", ErrDuplicateEdge, from, to)
	}

	e := newEdge(from, to, opts)
	g.seen[key] = struct{}{}
	g.adj[from] = append(g.adj[from], halfEdge{to: to, weight: e.Weight})
	if _, ok := g.adj[to]; !ok {
		g.adj[to] = nil // bucket for the sink endpoint
	}
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], halfEdge{to: from, weight: e.Weight})
	}

	return nil
}

// Vertices returns all bucket keys, ascending.
func (g *AdjacencyListGraph) Vertices() []VertexID {
	out := make([]VertexID, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sortVertices(out)

	return out
}

// Edges assembles every stored record from the adjacency, ascending by
// (From, To).
func (g *AdjacencyListGraph) Edges() []Edge {
	out := make([]Edge, 0, len(g.seen))
	for from, list := range g.adj {
		for _, he := range list {
			out = append(out, Edge{From: from, To: he.to, Weight: he.weight})
		}
	}
	sortEdges(out)

	return out
}

// EdgesFrom returns v's outgoing records in insertion order, or
// ErrVertexNotFound if v never appeared in any edge.
func (g *AdjacencyListGraph) EdgesFrom(v VertexID) ([]Edge, error) {
	list, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	out := make([]Edge, 0, len(list))
	for _, he := range list {
		out = append(out, Edge{From: v, To: he.to, Weight: he.weight})
	}

	return out, nil
}

// EdgesTo returns all records with destination v, ascending by source, or
// ErrVertexNotFound if v never appeared in any edge. The adjacency indexes
// outgoing edges only, so this scans every bucket.
func (g *AdjacencyListGraph) EdgesTo(v VertexID) ([]Edge, error) {
	if _, ok := g.adj[v]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	out := make([]Edge, 0)
	for from, list := range g.adj {
		for _, he := range list {
			if he.to == v {
				out = append(out, Edge{From: from, To: v, Weight: he.weight})
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// ValidateUndirectedness checks the mirror invariant over the assembled
// records. On-demand consistency check; AddEdge already enforces the
// mirror insert.
func (g *AdjacencyListGraph) ValidateUndirectedness() error {
	if g.directed {
		return ErrDirectedGraph
	}

	return validateMirrored(g.Edges())
}
