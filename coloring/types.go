// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// types.go — graph model, results and the per-call configuration shared by
// every coloring algorithm.
//
// Contract:
//   • vertices is the arrival order; only vertices[0..k) are present.
//   • Edges are undirected; endpoints resolve to plain IDs before use.
//   • Every call builds its own state and never mutates its inputs.

package coloring

import (
	"sort"

	"github.com/katalvlaran/lvcolor/palette"
)

// Endpoint is one end of an Edge: either a bare ID or a record carrying one.
type Endpoint interface {
	EndpointID() string
}

// ID is a bare vertex identifier used as an edge endpoint.
type ID string

// EndpointID returns the identifier itself.
func (id ID) EndpointID() string { return string(id) }

// Node is an identifier-bearing record used as an edge endpoint.
// Label is carried for display only.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// EndpointID returns the record's ID.
func (n Node) EndpointID() string { return n.ID }

// IsNil reports whether a *Node endpoint is a nil pointer; such an endpoint
// resolves to "" and its edge is ignored.
func (n *Node) IsNil() bool { return n == nil }

// Edge is an undirected connection; (u,v) and (v,u) are the same edge.
type Edge struct {
	Source Endpoint `json:"source" yaml:"source"`
	Target Endpoint `json:"target" yaml:"target"`
}

// NewEdge builds an edge between two bare IDs.
func NewEdge(source, target string) Edge {
	return Edge{Source: ID(source), Target: ID(target)}
}

// Endpoints returns the normalized source and target IDs.
func (e Edge) Endpoints() (string, string) {
	return resolveEndpoint(e.Source), resolveEndpoint(e.Target)
}

// Coloring maps a vertex ID to its palette token. A vertex absent from the
// map is uncolored.
type Coloring map[string]string

// Distinct returns the number of different tokens in use.
func (c Coloring) Distinct() int {
	seen := make(map[string]struct{}, len(c))
	for _, tok := range c {
		seen[tok] = struct{}{}
	}
	return len(seen)
}

// Clone returns an independent copy of c.
func (c Coloring) Clone() Coloring {
	out := make(Coloring, len(c))
	for v, tok := range c {
		out[v] = tok
	}
	return out
}

// Classes groups vertices by token. Vertices inside a class are sorted.
func (c Coloring) Classes() map[string][]string {
	out := make(map[string][]string)
	for v, tok := range c {
		out[tok] = append(out[tok], v)
	}
	for tok := range out {
		sort.Strings(out[tok])
	}
	return out
}

// Result is what every algorithm returns.
type Result struct {
	// Coloring holds the token chosen for each colored revealed vertex.
	Coloring Coloring `json:"coloring"`

	// TotalColors is the number of distinct tokens in Coloring.
	TotalColors int `json:"totalColors"`

	// Uncolored lists revealed vertices left without a token because the
	// palette ran out, in processing order.
	Uncolored []string `json:"uncolored,omitempty"`

	// Order is the processing order the algorithm used.
	Order []string `json:"order"`
}

// Stats summarizes a coloring against its revealed edges.
type Stats struct {
	TotalColors int `json:"totalColors"`
	Conflicts   int `json:"conflicts"`
}

// Func is the common signature of all coloring algorithms.
type Func func(vertices []string, edges []Edge, k int, opts ...Option) Result

// Option configures a single algorithm call.
type Option func(*config)

// config is the resolved, immutable per-call configuration.
type config struct {
	palette palette.Palette
}

// defaultPalette is read-only; palettes are never mutated after construction.
var defaultPalette = palette.Default()

// WithPalette replaces the default palette.
// Panics if p is the zero Palette.
func WithPalette(p palette.Palette) Option {
	if p.IsZero() {
		panic("coloring: WithPalette(zero palette)")
	}
	return func(c *config) { c.palette = p }
}

// newConfig resolves opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{palette: defaultPalette}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
