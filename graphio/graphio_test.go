package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomssem/ai-algos/graph"
	"github.com/tomssem/ai-algos/graphio"
)

// populate adds a small weighted fixture.
func populate(t *testing.T, g graph.Graph) graph.Graph {
	t.Helper()
	require.NoError(t, g.AddEdge(1, 2, graph.WithWeight(4.6)))
	require.NoError(t, g.AddEdge(4, 3, graph.WithWeight(8.8)))
	require.NoError(t, g.AddEdge(2, 4))

	return g
}

// TestRoundTrip_Backends saves and reloads each backend in both
// directedness modes, requiring identical enumerations and representation.
func TestRoundTrip_Backends(t *testing.T) {
	t.Parallel()

	cases := map[string]func(...graph.Option) graph.Graph{
		"edge_list":        func(opts ...graph.Option) graph.Graph { return graph.NewEdgeListGraph(opts...) },
		"adjacency_list":   func(opts ...graph.Option) graph.Graph { return graph.NewAdjacencyListGraph(opts...) },
		"adjacency_matrix": func(opts ...graph.Option) graph.Graph { return graph.NewAdjacencyMatrixGraph(opts...) },
	}
	for name, construct := range cases {
		for _, directed := range []bool{false, true} {
			g := populate(t, construct(graph.WithDirected(directed)))

			var buf bytes.Buffer
			require.NoError(t, graphio.Save(&buf, g), "%s directed=%v", name, directed)

			loaded, err := graphio.Load(&buf)
			require.NoError(t, err, "%s directed=%v", name, directed)

			require.IsType(t, g, loaded, name)
			require.Equal(t, g.Directed(), loaded.Directed(), name)
			require.Equal(t, g.Vertices(), loaded.Vertices(), name)
			require.Equal(t, g.Edges(), loaded.Edges(), name)
		}
	}
}

// TestRoundTrip_File exercises the path helpers.
func TestRoundTrip_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "graph.yaml")
	g := populate(t, graph.NewAdjacencyListGraph())
	require.NoError(t, graphio.SaveFile(path, g))

	loaded, err := graphio.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, g.Edges(), loaded.Edges())
}

// TestLoad_UnknownBackend rejects a document naming no known representation.
func TestLoad_UnknownBackend(t *testing.T) {
	t.Parallel()

	doc := "directed: false\nbackend: btree\nedges: []\n"
	_, err := graphio.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, graphio.ErrUnknownBackend)
}

// TestLoad_MalformedDocument rejects non-YAML input.
func TestLoad_MalformedDocument(t *testing.T) {
	t.Parallel()

	_, err := graphio.Load(strings.NewReader("{not yaml"))
	require.ErrorIs(t, err, graphio.ErrBadDocument)
}

// TestLoad_DirectedDuplicate rejects a directed document repeating an edge.
func TestLoad_DirectedDuplicate(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"directed: true",
		"backend: edge_list",
		"edges:",
		"  - {from: 1, to: 2, weight: 1}",
		"  - {from: 1, to: 2, weight: 3}",
		"",
	}, "\n")
	_, err := graphio.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, graphio.ErrBadDocument)
}

// TestLoad_UndirectedConflictingWeight rejects an undirected document
// repeating a logical edge with a different weight; only the exact mirror
// record of an already replayed edge may collide.
func TestLoad_UndirectedConflictingWeight(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"directed: false",
		"backend: edge_list",
		"edges:",
		"  - {from: 1, to: 2, weight: 5}",
		"  - {from: 2, to: 1, weight: 5}",
		"  - {from: 1, to: 2, weight: 9}",
		"",
	}, "\n")
	_, err := graphio.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, graphio.ErrBadDocument)
}

// TestLoad_UndirectedMirrorWeightMismatch rejects a mirror record whose
// weight disagrees with its forward record.
func TestLoad_UndirectedMirrorWeightMismatch(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"directed: false",
		"backend: adjacency_list",
		"edges:",
		"  - {from: 1, to: 2, weight: 5}",
		"  - {from: 2, to: 1, weight: 7}",
		"",
	}, "\n")
	_, err := graphio.Load(strings.NewReader(doc))
	require.ErrorIs(t, err, graphio.ErrBadDocument)
}

// TestSave_UnknownGraphType rejects graphs outside the backend catalog.
func TestSave_UnknownGraphType(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := graphio.Save(&buf, unknownGraph{})
	require.ErrorIs(t, err, graphio.ErrUnknownBackend)
}

// unknownGraph satisfies graph.Graph but matches no catalog entry.
type unknownGraph struct{}

func (unknownGraph) Vertices() []graph.VertexID                              { return nil }
func (unknownGraph) Edges() []graph.Edge                                     { return nil }
func (unknownGraph) AddEdge(_, _ graph.VertexID, _ ...graph.EdgeOption) error { return nil }
func (unknownGraph) EdgesFrom(graph.VertexID) ([]graph.Edge, error)          { return nil, nil }
func (unknownGraph) EdgesTo(graph.VertexID) ([]graph.Edge, error)            { return nil, nil }
func (unknownGraph) Directed() bool                                          { return false }
func (unknownGraph) ValidateUndirectedness() error                           { return nil }
