// Package search: strategies, options, errors, and the Result type.

package search

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tomssem/ai-algos/graph"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrNilGoal is returned if a nil goal predicate is passed.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrStartVertexNotFound indicates the start vertex is absent from the
	// graph. Surfaced before any traversal begins.
	ErrStartVertexNotFound = errors.New("search: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNeighbors wraps a failure to fetch neighbors from the graph.
	ErrNeighbors = errors.New("search: neighbor query failed")

	// ErrNegativeWeight indicates a negative edge weight was detected
	// before a BestFirst search; cumulative-cost ordering requires
	// non-negative weights.
	ErrNegativeWeight = errors.New("search: negative edge weight encountered")

	// ErrDuplicateTreeVertex indicates two nodes of a search tree share an ID.
	ErrDuplicateTreeVertex = errors.New("search: duplicate vertex id in tree")
)

// Goal decides whether a popped vertex terminates the search.
type Goal func(graph.VertexID) bool

// Strategy selects the built-in frontier ordering.
type Strategy int

const (
	// BreadthFirst expands vertices in FIFO order.
	BreadthFirst Strategy = iota

	// DepthFirst expands vertices in LIFO order.
	DepthFirst

	// BestFirst expands vertices in order of increasing cumulative edge
	// weight, ties broken by insertion order.
	BestFirst
)

// String names the strategy for logs and errors.
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	case BestFirst:
		return "best-first"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Option configures search behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing one search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// Strategy selects the built-in frontier. Ignored when a custom
	// Frontier is supplied.
	Strategy Strategy

	// Frontier, if non-nil, replaces the built-in frontier entirely.
	// Custom frontiers get the dedup-on-enqueue expansion semantics.
	Frontier Frontier

	// Logger receives structured debug events; zap.NewNop() by default.
	Logger *zap.Logger

	// OnEnqueue is called when a vertex is pushed, with its priority.
	OnEnqueue func(id graph.VertexID, priority float64)

	// OnVisit is called when a vertex is expanded. Returning an error
	// aborts the search and propagates that error.
	OnVisit func(id graph.VertexID) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// BreadthFirst strategy, no-op logger and hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Strategy:  BreadthFirst,
		Logger:    zap.NewNop(),
		OnEnqueue: func(graph.VertexID, float64) {},
		OnVisit:   func(graph.VertexID) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects a built-in frontier ordering. Unknown values are an
// ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < BreadthFirst || s > BestFirst {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))

			return
		}
		o.Strategy = s
	}
}

// WithFrontier supplies a caller-owned frontier, overriding Strategy's
// built-in one. The engine applies dedup-on-enqueue semantics, so a custom
// frontier exchanges expansion order only.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: nil frontier", ErrOptionViolation)

			return
		}
		o.Frontier = f
	}
}

// WithLogger attaches a structured logger to the engine.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback to run on every push.
func WithOnEnqueue(fn func(id graph.VertexID, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on every expansion; returning an
// error from this callback stops the search.
func WithOnVisit(fn func(id graph.VertexID) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of one search run.
type Result struct {
	// Found reports whether a vertex satisfying the goal was reached.
	// False means the frontier was exhausted; that is a normal terminal
	// state, not an error.
	Found bool

	// Path is the start-to-goal vertex sequence when Found, nil otherwise.
	Path []graph.VertexID

	// Cost is the priority at which the goal vertex was popped: cumulative
	// edge weight under BestFirst, hop count under BreadthFirst and
	// DepthFirst. Zero when not Found.
	Cost float64

	// Order lists expanded vertices in expansion sequence. The goal vertex
	// itself is not expanded and therefore not included.
	Order []graph.VertexID
}
