// Package graph: neighbor projections over the Graph contract.

package graph

// Neighbor is the (vertex, weight) projection of one incident edge: the far
// endpoint and the cost of the connecting edge.
type Neighbor struct {
	// ID is the neighboring vertex.
	ID VertexID

	// Weight is the weight of the connecting edge.
	Weight float64
}

// ChildrenOf returns v's direct successors with the connecting edge weight,
// in the order EdgesFrom reports them. Works against any Graph
// implementation and shares EdgesFrom's error contract.
func ChildrenOf(g Graph, v VertexID) ([]Neighbor, error) {
	es, err := g.EdgesFrom(v)
	if err != nil {
		return nil, err
	}

	out := make([]Neighbor, 0, len(es))
	for _, e := range es {
		out = append(out, Neighbor{ID: e.To, Weight: e.Weight})
	}

	return out, nil
}

// ParentsOf returns v's direct predecessors with the connecting edge weight,
// in the order EdgesTo reports them. Works against any Graph implementation
// and shares EdgesTo's error contract.
func ParentsOf(g Graph, v VertexID) ([]Neighbor, error) {
	es, err := g.EdgesTo(v)
	if err != nil {
		return nil, err
	}

	out := make([]Neighbor, 0, len(es))
	for _, e := range es {
		out = append(out, Neighbor{ID: e.From, Weight: e.Weight})
	}

	return out, nil
}
