// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// api.go — public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...) creates g, resolves cfg
//     and runs cons in order.
//   - Vertices are added in index order, so arrival order is the order a
//     constructor documents; edges are emitted in a stable order.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order. The first constructor
// error is wrapped as "BuildGraph: %w" and returned.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildLists runs BuildGraph and returns the result as an arrival-ordered
// vertex list and an insertion-ordered edge list, the form every coloring
// algorithm takes.
func BuildLists(bopts []BuilderOption, cons ...Constructor) ([]string, []coloring.Edge, error) {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		return nil, nil, err
	}
	vs, es := coloring.FromGraph(g)
	return vs, es, nil
}

// addVertices inserts ids in order.
func addVertices(g *core.Graph, method string, ids ...string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w: %w", method, id, err, ErrConstructFailed)
		}
	}
	return nil
}

// addEdge inserts u–v, keeping the store's error as context.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w: %w", method, u, v, err, ErrConstructFailed)
	}
	return nil
}

// indexIDs returns cfg.idFn(from..from+n-1).
func indexIDs(cfg builderConfig, from, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(from + i)
	}
	return ids
}
