// Package search: tree-shaped search state.
//
// Vertex is the explicit-children node type owned by the search engine, not
// by the graph stores: tree search state has no backing backend, so the
// children list lives on the node itself. SearchTree adapts a Vertex tree
// into the Graph contract and runs the ordinary engine over it.

package search

import (
	"fmt"

	"github.com/tomssem/ai-algos/graph"
)

// Vertex is a node of a search tree with an explicit children list.
type Vertex struct {
	// ID identifies the node; unique within one tree.
	ID graph.VertexID

	// Children are the nodes reachable from this one.
	Children []*Vertex
}

// NewVertex returns a leaf node with the given ID.
func NewVertex(id graph.VertexID) *Vertex {
	return &Vertex{ID: id}
}

// AddChild creates a node with the given ID, appends it to v's children,
// and returns it so subtrees chain naturally.
func (v *Vertex) AddChild(id graph.VertexID) *Vertex {
	c := NewVertex(id)
	v.Children = append(v.Children, c)

	return c
}

// SearchTree runs the engine over the tree rooted at root, treating every
// parent-child link as a unit-weight directed edge. Node IDs must be unique
// within the tree; a duplicate is reported as ErrDuplicateTreeVertex.
// All Search options apply.
func SearchTree(root *Vertex, goal Goal, opts ...Option) (*Result, error) {
	if root == nil {
		return nil, ErrGraphNil
	}
	tg, err := newTreeGraph(root)
	if err != nil {
		return nil, err
	}

	return Search(tg, root.ID, goal, opts...)
}

// treeGraph is a read-only Graph view over a Vertex tree. A leaf-only tree
// (a single root) still registers its root as a vertex so the engine's
// start check passes.
type treeGraph struct {
	order    []graph.VertexID
	children map[graph.VertexID][]graph.Edge
}

var _ graph.Graph = (*treeGraph)(nil)

// newTreeGraph walks the tree once, indexing children as unit-weight edges.
func newTreeGraph(root *Vertex) (*treeGraph, error) {
	t := &treeGraph{children: make(map[graph.VertexID][]graph.Edge)}
	if err := t.index(root); err != nil {
		return nil, err
	}

	return t, nil
}

// index registers v and recurses into its children in declaration order.
func (t *treeGraph) index(v *Vertex) error {
	if _, dup := t.children[v.ID]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateTreeVertex, v.ID)
	}
	t.order = append(t.order, v.ID)
	t.children[v.ID] = nil
	for _, c := range v.Children {
		t.children[v.ID] = append(t.children[v.ID],
			graph.Edge{From: v.ID, To: c.ID, Weight: graph.DefaultEdgeWeight})
		if err := t.index(c); err != nil {
			return err
		}
	}

	return nil
}

// Vertices returns every node ID in tree walk order.
func (t *treeGraph) Vertices() []graph.VertexID {
	out := make([]graph.VertexID, len(t.order))
	copy(out, t.order)

	return out
}

// Edges returns every parent-child link as a unit-weight edge.
func (t *treeGraph) Edges() []graph.Edge {
	out := make([]graph.Edge, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.children[id]...)
	}

	return out
}

// AddEdge is rejected: the view is frozen at construction.
func (t *treeGraph) AddEdge(_, _ graph.VertexID, _ ...graph.EdgeOption) error {
	return fmt.Errorf("search: tree graph is read-only")
}

// EdgesFrom returns the unit-weight edges to v's children.
func (t *treeGraph) EdgesFrom(v graph.VertexID) ([]graph.Edge, error) {
	es, ok := t.children[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", graph.ErrVertexNotFound, v)
	}
	out := make([]graph.Edge, len(es))
	copy(out, es)

	return out, nil
}

// EdgesTo returns the single edge from v's parent, if any.
func (t *treeGraph) EdgesTo(v graph.VertexID) ([]graph.Edge, error) {
	if _, ok := t.children[v]; !ok {
		return nil, fmt.Errorf("%w: %d", graph.ErrVertexNotFound, v)
	}
	out := make([]graph.Edge, 0, 1)
	for _, id := range t.order {
		for _, e := range t.children[id] {
			if e.To == v {
				out = append(out, e)
			}
		}
	}

	return out, nil
}

// Directed reports true: parent-child links are one-way.
func (t *treeGraph) Directed() bool { return true }

// ValidateUndirectedness always fails: a tree view is directed.
func (t *treeGraph) ValidateUndirectedness() error { return graph.ErrDirectedGraph }
