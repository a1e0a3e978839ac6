// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// graph.go — bridge from a core.Graph to the vertex/edge list form.

package coloring

import "github.com/katalvlaran/lvcolor/core"

// FromGraph returns g's vertices in arrival order and its edges in
// insertion order, ready to pass to any algorithm.
func FromGraph(g *core.Graph) ([]string, []Edge) {
	if g == nil {
		return nil, nil
	}
	es := g.Edges()
	edges := make([]Edge, 0, len(es))
	for _, e := range es {
		edges = append(edges, NewEdge(e.From, e.To))
	}
	return g.Vertices(), edges
}
