package dfs

import (
	"context"
	"errors"
)

// Vertex visitation colours.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates that a source or target label does not
	// name a vertex of the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrCycleDetected indicates a cycle on some source→target route.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrTooManyRoutes indicates that enumeration hit the WithMaxRoutes cap.
	ErrTooManyRoutes = errors.New("dfs: route limit exceeded")
)

// Option configures a walk.
type Option func(*Options)

// Options holds the knobs of Routes.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxRoutes caps the number of routes Routes may return; -1 means no cap.
	MaxRoutes int
}

// DefaultOptions returns a background context and no route cap.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxRoutes: -1,
	}
}

// WithContext sets the context checked at every vertex.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRoutes fails the walk with ErrTooManyRoutes once more than n routes
// are found. A negative n removes the cap.
func WithMaxRoutes(n int) Option {
	return func(o *Options) {
		o.MaxRoutes = n
	}
}
