// Package search: the frontier-driven engine.

package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tomssem/ai-algos/graph"
)

// Search explores g from start until a vertex satisfying goal is popped
// from the frontier, returning the path to it, or until the frontier is
// exhausted, returning Found == false with a nil error.
//
// Returns ErrGraphNil, ErrNilGoal or ErrStartVertexNotFound for malformed
// input, ErrOptionViolation for bad options, ErrNegativeWeight when a
// BestFirst search meets a negative weight, ErrNeighbors for graph
// failures, or any user-supplied hook error.
//
// Complexity: O(V + E) for BreadthFirst and DepthFirst;
// O((V + E) log V) for BestFirst.
func Search(g graph.Graph, start graph.VertexID, goal Goal, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex; the check is uniform across backends even
	// where EdgesFrom is not (the matrix backend reports empty, not error).
	if !hasVertex(g, start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	weighted := o.Frontier == nil && o.Strategy == BestFirst
	if weighted {
		// Fail fast: cumulative-cost ordering is unsound on negative weights.
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d->%d weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	frontier := o.Frontier
	if frontier == nil {
		frontier = frontierFor(o.Strategy)
	}

	w := &walker{
		g:        g,
		opts:     o,
		goal:     goal,
		frontier: frontier,
		weighted: weighted,
		visited:  make(map[graph.VertexID]bool),
		enqueued: make(map[graph.VertexID]bool),
		parent:   make(map[graph.VertexID]graph.VertexID),
		best:     make(map[graph.VertexID]float64),
		start:    start,
		res:      &Result{},
	}

	// Seed the frontier with the start vertex at priority zero.
	w.push(start, 0)

	return w.res, w.loop()
}

// walker holds the mutable state of one search run: frontier, visited set,
// predecessor map, and (for BestFirst) best-known costs. Discarded when the
// search terminates.
type walker struct {
	g        graph.Graph
	opts     Options
	goal     Goal
	frontier Frontier
	weighted bool
	visited  map[graph.VertexID]bool
	enqueued map[graph.VertexID]bool
	parent   map[graph.VertexID]graph.VertexID
	best     map[graph.VertexID]float64
	start    graph.VertexID
	res      *Result
}

// push records bookkeeping for id and adds it to the frontier.
func (w *walker) push(id graph.VertexID, priority float64) {
	w.enqueued[id] = true
	if w.weighted {
		w.best[id] = priority
	}
	w.opts.OnEnqueue(id, priority)
	w.opts.Logger.Debug("search: enqueue",
		zap.Int64("vertex", int64(id)), zap.Float64("priority", priority))
	w.frontier.Push(id, priority)
}

// loop pops until the goal is found, the frontier empties, the context is
// cancelled, or a hook or the graph reports an error.
func (w *walker) loop() error {
	for w.frontier.Len() > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id, priority, ok := w.frontier.Pop()
		if !ok {
			break
		}
		// Lazy decrease-key leaves stale entries behind; a vertex already
		// expanded was popped at its final cost and was not the goal.
		if w.weighted && w.visited[id] {
			continue
		}

		if w.goal(id) {
			w.res.Found = true
			w.res.Cost = priority
			w.res.Path = w.reconstruct(id)
			w.opts.Logger.Debug("search: goal found",
				zap.Int64("vertex", int64(id)), zap.Float64("cost", priority))

			return nil
		}

		if err := w.visit(id); err != nil {
			return err
		}
		if err := w.expand(id, priority); err != nil {
			return err
		}
	}

	w.opts.Logger.Debug("search: frontier exhausted",
		zap.Int("expanded", len(w.res.Order)))

	return nil
}

// visit marks id expanded, records it in Order, and calls OnVisit.
func (w *walker) visit(id graph.VertexID) error {
	w.visited[id] = true
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id); err != nil {
		return fmt.Errorf("search: OnVisit error at %d: %w", id, err)
	}

	return nil
}

// expand pushes id's eligible neighbors. Breadth/depth strategies skip
// neighbors already visited or enqueued; BestFirst re-pushes a neighbor
// whenever a strictly cheaper cumulative cost is found, updating its
// predecessor (lazy decrease-key).
func (w *walker) expand(id graph.VertexID, priority float64) error {
	neighbors, err := w.g.EdgesFrom(id)
	if err != nil {
		return fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, id, err)
	}

	for _, e := range neighbors {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if w.weighted {
			next := priority + e.Weight
			if known, ok := w.best[e.To]; ok && next >= known {
				continue
			}
			w.parent[e.To] = id
			w.push(e.To, next)

			continue
		}

		if w.visited[e.To] || w.enqueued[e.To] {
			continue
		}
		w.parent[e.To] = id
		w.push(e.To, priority+1)
	}

	return nil
}

// reconstruct walks predecessor links from the goal back to the start and
// reverses the result.
func (w *walker) reconstruct(goal graph.VertexID) []graph.VertexID {
	path := []graph.VertexID{goal}
	for cur := goal; cur != w.start; {
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// hasVertex reports membership of v in g's vertex set.
func hasVertex(g graph.Graph, v graph.VertexID) bool {
	for _, u := range g.Vertices() {
		if u == v {
			return true
		}
	}

	return false
}
