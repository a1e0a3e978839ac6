// SPDX-License-Identifier: MIT

// Package coloring is the online graph-coloring engine.
//
// Given an ordered vertex list (the arrival order), an undirected edge list
// and a reveal count k, each algorithm colors the sub-graph induced by
// vertices[0..k) from scratch and reports how many palette tokens it used.
//
// Algorithms (all share the Func signature):
//
//   - FirstFit: arrival order, constrained by the pre-neighborhood only.
//   - CBIP: arrival order, constrained by the opposite side of a BFS
//     bipartition of the vertex's current component.
//   - Greedy: descending-degree order, constrained by colored neighbors.
//   - WelshPowell: the same order filled one color class at a time.
//
// Supporting pieces:
//
//   - Edge endpoints are bare IDs or {id} records; both resolve to the same
//     ID, and both forms decode from JSON and YAML.
//   - Evaluate counts improper edges; RevealedEdges gives the edge set it
//     is meant to run on.
//   - Compare runs every registered algorithm independently.
//   - Lookup / Algorithms expose the registry in comparison order.
//
// Behavior worth knowing:
//
//   - Nothing is cached between calls and inputs are never mutated.
//   - Degree-ordered algorithms may recolor an already revealed vertex when
//     k grows, because the order is rebuilt on every call.
//   - Malformed edges (unknown or unrevealed endpoint, self-loop, repeated
//     pair) are dropped silently. k is clamped to [0, len(vertices)].
//   - When the palette runs out the vertex stays uncolored and is listed in
//     Result.Uncolored; it never errors.
//
// The palette is injected with WithPalette; the default is palette.Default.
package coloring
