package graph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomssem/ai-algos/graph"
)

// TestAdjList_UndirectedAddEdge verifies the mirror insert and validator.
func TestAdjList_UndirectedAddEdge(t *testing.T) {
	g := graph.NewAdjacencyListGraph()
	if err := g.AddEdge(1, 2, graph.WithWeight(3.14)); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	want := []graph.Edge{
		{From: 1, To: 2, Weight: 3.14},
		{From: 2, To: 1, Weight: 3.14},
	}
	if !reflect.DeepEqual(g.Edges(), want) {
		t.Errorf("Edges = %v; want %v", g.Edges(), want)
	}
	if err := g.ValidateUndirectedness(); err != nil {
		t.Errorf("ValidateUndirectedness: %v", err)
	}
}

// TestAdjList_SinkVertexTracked verifies a pure sink still counts as a
// vertex on a directed backend.
func TestAdjList_SinkVertexTracked(t *testing.T) {
	g := graph.NewAdjacencyListGraph(graph.WithDirected(true))
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if want := []graph.VertexID{1, 2}; !reflect.DeepEqual(g.Vertices(), want) {
		t.Errorf("Vertices = %v; want %v", g.Vertices(), want)
	}
	// sink has no outgoing edges, but the query must succeed
	out, err := g.EdgesFrom(2)
	if err != nil {
		t.Fatalf("EdgesFrom(2): %v", err)
	}
	if len(out) != 0 {
		t.Errorf("EdgesFrom(2) = %v; want empty", out)
	}
}

// TestAdjList_EdgesFromOrder verifies outgoing edges preserve insertion order.
func TestAdjList_EdgesFromOrder(t *testing.T) {
	g := graph.NewAdjacencyListGraph(graph.WithDirected(true))
	g.AddEdge(1, 9)
	g.AddEdge(1, 2)
	g.AddEdge(1, 5)

	out, err := g.EdgesFrom(1)
	if err != nil {
		t.Fatalf("EdgesFrom(1): %v", err)
	}
	want := []graph.Edge{
		{From: 1, To: 9, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 5, Weight: 1},
	}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("EdgesFrom(1) = %v; want %v", out, want)
	}
}

// TestAdjList_EdgesTo verifies incoming queries collect across sources,
// ascending.
func TestAdjList_EdgesTo(t *testing.T) {
	g := graph.NewAdjacencyListGraph(graph.WithDirected(true))
	g.AddEdge(7, 3, graph.WithWeight(2))
	g.AddEdge(1, 3, graph.WithWeight(4))
	g.AddEdge(3, 1)

	in, err := g.EdgesTo(3)
	if err != nil {
		t.Fatalf("EdgesTo(3): %v", err)
	}
	want := []graph.Edge{
		{From: 1, To: 3, Weight: 4},
		{From: 7, To: 3, Weight: 2},
	}
	if !reflect.DeepEqual(in, want) {
		t.Errorf("EdgesTo(3) = %v; want %v", in, want)
	}
}

// TestAdjList_DuplicateRejected mirrors the edge-list duplicate contract.
func TestAdjList_DuplicateRejected(t *testing.T) {
	g := graph.NewAdjacencyListGraph()
	if err := g.AddEdge(4, 3, graph.WithWeight(8.8)); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	before := g.Edges()

	if err := g.AddEdge(3, 4); !errors.Is(err, graph.ErrDuplicateEdge) {
		t.Errorf("reverse ordering: want ErrDuplicateEdge, got %v", err)
	}
	if !reflect.DeepEqual(g.Edges(), before) {
		t.Errorf("Edges changed after rejected insert: %v != %v", g.Edges(), before)
	}
}

// TestAdjList_VertexNotFound verifies the unknown-vertex contract.
func TestAdjList_VertexNotFound(t *testing.T) {
	g := graph.NewAdjacencyListGraph()
	g.AddEdge(1, 2)

	if _, err := g.EdgesFrom(42); !errors.Is(err, graph.ErrVertexNotFound) {
		t.Errorf("EdgesFrom(42): want ErrVertexNotFound, got %v", err)
	}
	if _, err := g.EdgesTo(42); !errors.Is(err, graph.ErrVertexNotFound) {
		t.Errorf("EdgesTo(42): want ErrVertexNotFound, got %v", err)
	}
}
