// Package graph: adjacency-matrix backend.
//
// Storage is a dense row-major grid indexed by vertex ID with the explicit
// offset formula i*n + j. A parallel presence grid distinguishes "no edge"
// from a legitimate zero-weight edge, so weights carry no sentinel value.

package graph

import "fmt"

// AdjacencyMatrixGraph stores weights in a square row-major grid grown on
// demand. Vertex presence is derived from the grid: a vertex exists when
// its row or column holds at least one present cell.
//
// IDs index the grid directly, so negative IDs are rejected with
// ErrVertexRange, and neighbor queries on absent vertices return empty
// results rather than ErrVertexNotFound.
//
// Complexity: AddEdge O(1) amortized (O(V²) copy when the grid grows);
// EdgesFrom/EdgesTo O(V); Vertices O(V²); Edges O(V²). Space O(V²).
type AdjacencyMatrixGraph struct {
	directed bool
	n        int       // current grid dimension
	weights  []float64 // n*n row-major weight grid
	present  []bool    // n*n row-major presence grid
}

var _ Graph = (*AdjacencyMatrixGraph)(nil)

// NewAdjacencyMatrixGraph creates an empty matrix backend, undirected
// unless WithDirected(true) is given. The grid starts at zero capacity and
// grows with the maximum vertex ID.
func NewAdjacencyMatrixGraph(opts ...Option) *AdjacencyMatrixGraph {
	cfg := gatherOptions(opts)

	return &AdjacencyMatrixGraph{directed: cfg.directed}
}

// Directed reports whether this instance stores one cell per AddEdge.
func (g *AdjacencyMatrixGraph) Directed() bool { return g.directed }

// at returns the row-major offset of cell (i, j). Callers guarantee bounds.
func (g *AdjacencyMatrixGraph) at(i, j VertexID) int {
	return int(i)*g.n + int(j)
}

// grow resizes the grid to hold vertex IDs up to need-1, copying every
// existing cell to the same (row, column) coordinates in the larger
// zero-initialized grid. Capacity doubles to amortize repeated growth.
func (g *AdjacencyMatrixGraph) grow(need int) {
	n := g.n
	if n == 0 {
		n = 1
	}
	for n < need {
		n *= 2
	}

	weights := make([]float64, n*n)
	present := make([]bool, n*n)
	for i := 0; i < g.n; i++ {
		copy(weights[i*n:i*n+g.n], g.weights[i*g.n:(i+1)*g.n])
		copy(present[i*n:i*n+g.n], g.present[i*g.n:(i+1)*g.n])
	}
	g.n, g.weights, g.present = n, weights, present
}

// AddEdge marks cell (from, to) (and (to, from) when undirected) present
// with the edge weight, growing the grid first if a new maximum ID arrived.
// The grid is untouched on duplicate or range failure.
func (g *AdjacencyMatrixGraph) AddEdge(from, to VertexID, opts ...EdgeOption) error {
	if from < 0 || to < 0 {
		return fmt.Errorf("%w: %d->%d", ErrVertexRange, from, to)
	}

	need := int(from) + 1
	if int(to) >= need {
		need = int(to) + 1
	}
	if need <= g.n && g.present[g.at(from, to)] {
		// The mirror cell is written on every undirected insert, so one
		// cell answers the duplicate check for either ordering.
		return fmt.Errorf("%w: %d->%d", ErrDuplicateEdge, from, to)
	}
	if need > g.n {
		g.grow(need)
	}

	e := newEdge(from, to, opts)
	g.weights[g.at(from, to)] = e.Weight
	g.present[g.at(from, to)] = true
	if !g.directed {
		g.weights[g.at(to, from)] = e.Weight
		g.present[g.at(to, from)] = true
	}

	return nil
}

// Vertices returns every ID whose row or column holds a present cell,
// ascending. Row-major scan keeps the result deterministic.
func (g *AdjacencyMatrixGraph) Vertices() []VertexID {
	member := make([]bool, g.n)
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if g.present[i*g.n+j] {
				member[i] = true
				member[j] = true
			}
		}
	}

	out := make([]VertexID, 0)
	for v, ok := range member {
		if ok {
			out = append(out, VertexID(v))
		}
	}

	return out
}

// Edges returns one record per present cell, ascending by (From, To).
func (g *AdjacencyMatrixGraph) Edges() []Edge {
	out := make([]Edge, 0)
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if g.present[i*g.n+j] {
				out = append(out, Edge{From: VertexID(i), To: VertexID(j), Weight: g.weights[i*g.n+j]})
			}
		}
	}

	return out
}

// EdgesFrom returns v's row as edge records, ascending by destination.
// An absent or out-of-grid vertex yields an empty slice, never an error.
func (g *AdjacencyMatrixGraph) EdgesFrom(v VertexID) ([]Edge, error) {
	out := make([]Edge, 0)
	if v < 0 || int(v) >= g.n {
		return out, nil
	}
	for j := 0; j < g.n; j++ {
		if g.present[g.at(v, VertexID(j))] {
			out = append(out, Edge{From: v, To: VertexID(j), Weight: g.weights[g.at(v, VertexID(j))]})
		}
	}

	return out, nil
}

// EdgesTo returns v's column as edge records, ascending by source.
// An absent or out-of-grid vertex yields an empty slice, never an error.
func (g *AdjacencyMatrixGraph) EdgesTo(v VertexID) ([]Edge, error) {
	out := make([]Edge, 0)
	if v < 0 || int(v) >= g.n {
		return out, nil
	}
	for i := 0; i < g.n; i++ {
		if g.present[g.at(VertexID(i), v)] {
			out = append(out, Edge{From: VertexID(i), To: v, Weight: g.weights[g.at(VertexID(i), v)]})
		}
	}

	return out, nil
}

// ValidateUndirectedness checks that the grid equals its transpose, both
// presence and weight. On-demand consistency check; AddEdge already writes
// the mirror cell.
func (g *AdjacencyMatrixGraph) ValidateUndirectedness() error {
	if g.directed {
		return ErrDirectedGraph
	}

	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			ij, ji := i*g.n+j, j*g.n+i
			if g.present[ij] != g.present[ji] {
				return fmt.Errorf("%w: cell (%d,%d) present=%v but transpose present=%v",
					ErrUndirectedViolation, i, j, g.present[ij], g.present[ji])
			}
			if g.present[ij] && g.weights[ij] != g.weights[ji] {
				return fmt.Errorf("%w: cell (%d,%d) weight %v but transpose weight %v",
					ErrUndirectedViolation, i, j, g.weights[ij], g.weights[ji])
			}
		}
	}

	return nil
}
