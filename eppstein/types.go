package eppstein

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the ranker.
var (
	// ErrNotReady indicates a ranked-path query without a valid structure:
	// FindShortestPath was never called, failed, or the graph changed since.
	ErrNotReady = errors.New("eppstein: ranking structure not built")

	// ErrExhausted indicates there are no more distinct paths.
	ErrExhausted = errors.New("eppstein: no more paths")

	// ErrSameEndpoints indicates source and target are the same vertex.
	ErrSameEndpoints = errors.New("eppstein: source and target are the same vertex")

	// ErrUnreachable indicates the target cannot be reached from the source
	// over non-negative edges.
	ErrUnreachable = errors.New("eppstein: target unreachable from source")

	// ErrNilGraph indicates a ranker over a nil *core.Graph.
	ErrNilGraph = errors.New("eppstein: graph is nil")

	// ErrBadCount indicates a non-positive k passed to KShortestPaths.
	ErrBadCount = errors.New("eppstein: path count must be positive")
)

// defaultCapacity is the initial size of the frontier and ranking queues.
const defaultCapacity = 16

// Options configures a Ranker.
//
// Logger          – receives debug entries about tree and queue sizes.
// InitialCapacity – pre-sizes the internal priority queues (≥ 0).
type Options struct {
	Logger          logrus.FieldLogger
	InitialCapacity int
}

// Option represents a functional option for configuring a Ranker.
type Option func(*Options)

// WithLogger routes the ranker's debug output to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("eppstein: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithInitialCapacity pre-sizes the internal queues. Panics if n < 0.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic("eppstein: WithInitialCapacity(n<0)")
	}
	return func(o *Options) {
		o.InitialCapacity = n
	}
}

// DefaultOptions returns the defaults: a logger that discards everything and
// an initial queue capacity of 16.
func DefaultOptions() Options {
	return Options{
		Logger:          discardLogger(),
		InitialCapacity: defaultCapacity,
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
