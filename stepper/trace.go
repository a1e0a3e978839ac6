// SPDX-License-Identifier: MIT
// Package: lvcolor/stepper
//
// trace.go — whole-sequence replays: one engine call per reveal count.

package stepper

import "github.com/katalvlaran/lvcolor/coloring"

// Step is the engine output for one reveal count.
type Step struct {
	// K is the reveal count.
	K int `json:"k"`

	// Current is vertices[K-1], the vertex that arrived at this step.
	// Empty for K == 0.
	Current string `json:"current,omitempty"`

	Result coloring.Result `json:"result"`
	Stats  coloring.Stats  `json:"stats"`

	// Recolored lists vertices revealed before this step whose token differs
	// from the previous step, in arrival order.
	Recolored []string `json:"recolored,omitempty"`
}

// CompareStep is the comparison output for one reveal count.
type CompareStep struct {
	K          int                 `json:"k"`
	Current    string              `json:"current,omitempty"`
	Comparison coloring.Comparison `json:"comparison"`
}

// currentAt returns vertices[k-1], or "" for k == 0.
func currentAt(vertices []string, k int) string {
	if k <= 0 || k > len(vertices) {
		return ""
	}
	return vertices[k-1]
}

// Trace runs fn for every k in 0..len(vertices). Each step is an
// independent, full recomputation; the trace only diffs adjacent steps to
// report recoloring.
//
// Complexity: n+1 engine calls.
func Trace(fn coloring.Func, vertices []string, edges []coloring.Edge, opts ...coloring.Option) []Step {
	n := len(vertices)
	steps := make([]Step, 0, n+1)
	var prev coloring.Coloring
	for k := 0; k <= n; k++ {
		res, st := coloring.Run(fn, vertices, edges, k, opts...)
		steps = append(steps, Step{
			K:         k,
			Current:   currentAt(vertices, k),
			Result:    res,
			Stats:     st,
			Recolored: recolored(vertices[:max(k-1, 0)], prev, res.Coloring),
		})
		prev = res.Coloring
	}
	return steps
}

// recolored returns the vertices among earlier whose token in cur differs
// from prev, once each, in order.
func recolored(earlier []string, prev, cur coloring.Coloring) []string {
	var out []string
	seen := make(map[string]bool, len(earlier))
	for _, v := range earlier {
		if seen[v] {
			continue
		}
		seen[v] = true
		before, wasColored := prev[v]
		after, isColored := cur[v]
		if wasColored != isColored || before != after {
			out = append(out, v)
		}
	}
	return out
}

// CompareTrace runs coloring.Compare for every k in 0..len(vertices).
func CompareTrace(vertices []string, edges []coloring.Edge, opts ...coloring.Option) []CompareStep {
	n := len(vertices)
	steps := make([]CompareStep, 0, n+1)
	for k := 0; k <= n; k++ {
		steps = append(steps, CompareStep{
			K:          k,
			Current:    currentAt(vertices, k),
			Comparison: coloring.Compare(vertices, edges, k, opts...),
		})
	}
	return steps
}

// RecolorCount sums len(Recolored) over a trace.
func RecolorCount(steps []Step) int {
	total := 0
	for _, s := range steps {
		total += len(s.Recolored)
	}
	return total
}
