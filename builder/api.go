// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// api.go — public entry points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(bopts, cons...) creates g, resolves cfg,
//     runs cons in order.
//   • Constructors are implemented in impl_*.go.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors wrapped with context.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts and applies all constructors in order. The first constructor error is
// returned wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the labels in order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if _, err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w: %w", method, ids[i], ErrConstructFailed, err)
		}
	}

	return ids, nil
}

// addEdge inserts u→v with the next configured weight.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w, cfg.group); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
