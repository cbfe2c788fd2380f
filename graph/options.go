// Package graph: functional configuration for backends and edges.

package graph

// Option configures a backend before creation.
type Option func(*config)

// config collects backend-independent construction flags.
type config struct {
	directed bool
}

// WithDirected sets the directedness of the backend (true = one record per
// AddEdge, false = mirror every insertion). Backends are undirected by
// default.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// gatherOptions folds Options over the default configuration.
func gatherOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// EdgeOption configures a single edge at AddEdge time.
type EdgeOption func(*Edge)

// WithWeight overrides DefaultEdgeWeight for this edge.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// newEdge builds the edge record for an AddEdge call: default weight first,
// then per-edge overrides.
func newEdge(from, to VertexID, opts []EdgeOption) Edge {
	e := Edge{From: from, To: to, Weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}
