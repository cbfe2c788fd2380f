// Package graphio persists graphs to and from a small YAML document,
// keyed by a caller-visible backend name so a load restores the same
// storage representation a save recorded.
//
// The document stores the directedness flag, the backend name, and the full
// set of stored directed edge records. An undirected save therefore writes
// both directions of every logical edge; Load replays AddEdge and skips the
// mirror duplicate the backend materializes on its own.
//
// Persistence is a collaborator of the graph core, not part of the Graph
// contract: it consumes backends exclusively through the contract's query
// operations.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomssem/ai-algos/graph"
)

var (
	// ErrUnknownBackend indicates a graph type Save cannot name, or a
	// document whose backend field Load cannot construct.
	ErrUnknownBackend = errors.New("graphio: unknown backend")

	// ErrBadDocument indicates the input is not a well-formed graph document.
	ErrBadDocument = errors.New("graphio: malformed document")
)

// Backend names a storage representation in the persisted document.
type Backend string

const (
	// BackendEdgeList names graph.EdgeListGraph.
	BackendEdgeList Backend = "edge_list"

	// BackendAdjacencyList names graph.AdjacencyListGraph.
	BackendAdjacencyList Backend = "adjacency_list"

	// BackendAdjacencyMatrix names graph.AdjacencyMatrixGraph.
	BackendAdjacencyMatrix Backend = "adjacency_matrix"
)

// document is the on-disk shape.
type document struct {
	Directed bool         `yaml:"directed"`
	Backend  Backend      `yaml:"backend"`
	Edges    []edgeRecord `yaml:"edges"`
}

// edgeRecord is one stored directed edge.
type edgeRecord struct {
	From   int64   `yaml:"from"`
	To     int64   `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// backendOf names the concrete storage type of g.
func backendOf(g graph.Graph) (Backend, error) {
	switch g.(type) {
	case *graph.EdgeListGraph:
		return BackendEdgeList, nil
	case *graph.AdjacencyListGraph:
		return BackendAdjacencyList, nil
	case *graph.AdjacencyMatrixGraph:
		return BackendAdjacencyMatrix, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownBackend, g)
	}
}

// construct builds an empty backend for the named representation.
func construct(b Backend, directed bool) (graph.Graph, error) {
	opt := graph.WithDirected(directed)
	switch b {
	case BackendEdgeList:
		return graph.NewEdgeListGraph(opt), nil
	case BackendAdjacencyList:
		return graph.NewAdjacencyListGraph(opt), nil
	case BackendAdjacencyMatrix:
		return graph.NewAdjacencyMatrixGraph(opt), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, b)
	}
}

// Save writes g to w as a YAML graph document. Returns ErrUnknownBackend
// for graph types outside this package's catalog.
func Save(w io.Writer, g graph.Graph) error {
	b, err := backendOf(g)
	if err != nil {
		return err
	}

	doc := document{Directed: g.Directed(), Backend: b}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeRecord{From: int64(e.From), To: int64(e.To), Weight: e.Weight})
	}

	enc := yaml.NewEncoder(w)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// Load reads a YAML graph document from r and replays it into a fresh
// backend of the recorded representation. Mirror records written by an
// undirected save are recognized and skipped; any other duplicate, or a
// repeated record whose weight disagrees with the stored one, means the
// document is malformed.
func Load(r io.Reader) (graph.Graph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	g, err := construct(doc.Backend, doc.Directed)
	if err != nil {
		return nil, err
	}

	for _, rec := range doc.Edges {
		err = g.AddEdge(graph.VertexID(rec.From), graph.VertexID(rec.To), graph.WithWeight(rec.Weight))
		if err == nil {
			continue
		}
		if !doc.Directed && errors.Is(err, graph.ErrDuplicateEdge) {
			// A true mirror carries the weight already stored for the
			// logical edge; anything else is a corrupt document.
			stored, ok := storedWeight(g, graph.VertexID(rec.From), graph.VertexID(rec.To))
			if ok && stored == rec.Weight {
				continue
			}

			return nil, fmt.Errorf("%w: edge %d->%d repeated with weight %v, stored weight %v",
				ErrBadDocument, rec.From, rec.To, rec.Weight, stored)
		}

		return nil, fmt.Errorf("%w: edge %d->%d: %v", ErrBadDocument, rec.From, rec.To, err)
	}

	return g, nil
}

// storedWeight reports the weight already recorded for the (from, to) pair.
func storedWeight(g graph.Graph, from, to graph.VertexID) (float64, bool) {
	es, err := g.EdgesFrom(from)
	if err != nil {
		return 0, false
	}
	for _, e := range es {
		if e.To == to {
			return e.Weight, true
		}
	}

	return 0, false
}

// SaveFile writes g to path, overwriting any existing file.
func SaveFile(path string, g graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer f.Close()

	return Save(f, g)
}

// LoadFile reads a graph document from path.
func LoadFile(path string) (graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
