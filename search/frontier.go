// Package search: pluggable frontier containers.
//
// The three built-in frontiers wrap emirpasic/gods containers. The priority
// frontier carries a monotonic sequence number per item so equal priorities
// pop in insertion order, keeping path selection reproducible for a fixed
// graph and strategy.

package search

import (
	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/tomssem/ai-algos/graph"
)

// Frontier is the set of discovered-but-not-yet-expanded vertices, ordered
// by the active strategy. Implementations need not be safe for concurrent
// use; the engine owns its frontier exclusively.
type Frontier interface {
	// Push adds a vertex with the priority it was discovered at.
	Push(id graph.VertexID, priority float64)

	// Pop removes and returns the next vertex per the frontier's ordering.
	// The second return is false when the frontier is empty.
	Pop() (graph.VertexID, float64, bool)

	// Len returns the number of queued entries.
	Len() int
}

// frontierItem is the stored (vertex, priority) pair; seq is the insertion
// counter used by the priority frontier's tie-break.
type frontierItem struct {
	id       graph.VertexID
	priority float64
	seq      uint64
}

// fifoFrontier pops in insertion order (breadth-first).
type fifoFrontier struct {
	q *arrayqueue.Queue
}

// NewFIFOFrontier returns the breadth-first frontier.
func NewFIFOFrontier() Frontier {
	return &fifoFrontier{q: arrayqueue.New()}
}

func (f *fifoFrontier) Push(id graph.VertexID, priority float64) {
	f.q.Enqueue(&frontierItem{id: id, priority: priority})
}

func (f *fifoFrontier) Pop() (graph.VertexID, float64, bool) {
	v, ok := f.q.Dequeue()
	if !ok {
		return 0, 0, false
	}
	it := v.(*frontierItem)

	return it.id, it.priority, true
}

func (f *fifoFrontier) Len() int { return f.q.Size() }

// lifoFrontier pops in reverse insertion order (depth-first).
type lifoFrontier struct {
	s *arraystack.Stack
}

// NewLIFOFrontier returns the depth-first frontier.
func NewLIFOFrontier() Frontier {
	return &lifoFrontier{s: arraystack.New()}
}

func (f *lifoFrontier) Push(id graph.VertexID, priority float64) {
	f.s.Push(&frontierItem{id: id, priority: priority})
}

func (f *lifoFrontier) Pop() (graph.VertexID, float64, bool) {
	v, ok := f.s.Pop()
	if !ok {
		return 0, 0, false
	}
	it := v.(*frontierItem)

	return it.id, it.priority, true
}

func (f *lifoFrontier) Len() int { return f.s.Size() }

// minFrontier pops the lowest priority first; ties pop in insertion order.
type minFrontier struct {
	pq   *priorityqueue.Queue
	next uint64
}

// NewMinFrontier returns the best-first frontier: ascending priority,
// stable on ties. Passing it through WithFrontier is not equivalent to
// WithStrategy(BestFirst): custom frontiers get dedup-on-enqueue expansion,
// while the BestFirst strategy relaxes costs and re-pushes cheaper paths.
func NewMinFrontier() Frontier {
	return &minFrontier{pq: priorityqueue.NewWith(byPriorityThenSeq)}
}

// byPriorityThenSeq orders frontier items by (priority, seq) ascending.
func byPriorityThenSeq(a, b interface{}) int {
	ia, ib := a.(*frontierItem), b.(*frontierItem)
	switch {
	case ia.priority < ib.priority:
		return -1
	case ia.priority > ib.priority:
		return 1
	case ia.seq < ib.seq:
		return -1
	case ia.seq > ib.seq:
		return 1
	default:
		return 0
	}
}

func (f *minFrontier) Push(id graph.VertexID, priority float64) {
	f.next++
	f.pq.Enqueue(&frontierItem{id: id, priority: priority, seq: f.next})
}

func (f *minFrontier) Pop() (graph.VertexID, float64, bool) {
	v, ok := f.pq.Dequeue()
	if !ok {
		return 0, 0, false
	}
	it := v.(*frontierItem)

	return it.id, it.priority, true
}

func (f *minFrontier) Len() int { return f.pq.Size() }

// frontierFor maps a strategy to its built-in frontier.
func frontierFor(s Strategy) Frontier {
	switch s {
	case DepthFirst:
		return NewLIFOFrontier()
	case BestFirst:
		return NewMinFrontier()
	default:
		return NewFIFOFrontier()
	}
}
