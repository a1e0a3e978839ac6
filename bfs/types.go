// SPDX-License-Identifier: MIT
// Package: lvcolor/bfs
//
// types.go — sentinels, options and the traversal result.

package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrGraphNil indicates a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates a start ID absent from the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("bfs: invalid option")

	// ErrNeighbors indicates the graph failed to list a vertex's neighbors.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Option tunes one traversal. Invalid values are recorded and reported by
// BFS as ErrOptionViolation.
type Option func(*config)

type config struct {
	onEnqueue func(id string, depth int)
	onVisit   func(id string, depth int) error
	keep      func(from, to string) bool
	maxDepth  int // 0 = unlimited
	err       error
}

func newConfig(opts []Option) config {
	c := config{
		onEnqueue: func(string, int) {},
		onVisit:   func(string, int) error { return nil },
		keep:      func(string, string) bool { return true },
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithOnEnqueue is called when a vertex is discovered, before it is visited.
// nil is ignored.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onEnqueue = fn
		}
	}
}

// WithOnVisit is called as each vertex is visited; a non-nil error stops the
// traversal and is returned wrapped. nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(c *config) {
		if fn != nil {
			c.onVisit = fn
		}
	}
}

// WithMaxDepth stops discovery beyond depth d. d == 0 means no limit.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			c.err = fmt.Errorf("bfs: WithMaxDepth(%d): %w", d, ErrOptionViolation)
			return
		}
		c.maxDepth = d
	}
}

// WithFilterNeighbor skips the edge from → to when fn returns false.
// nil is ignored.
func WithFilterNeighbor(fn func(from, to string) bool) Option {
	return func(c *config) {
		if fn != nil {
			c.keep = fn
		}
	}
}

// BFSResult is what one traversal reached.
type BFSResult struct {
	// Order is the visit sequence, start first.
	Order []string

	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[string]int

	// Parent maps each reached vertex except the start to its BFS-tree
	// predecessor.
	Parent map[string]string
}

func newResult(capacity int) *BFSResult {
	return &BFSResult{
		Order:  make([]string, 0, capacity),
		Depth:  make(map[string]int, capacity),
		Parent: make(map[string]string, capacity),
	}
}

// PathTo returns the tree path start → … → dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: PathTo(%q): not reached", dest)
	}
	path := make([]string, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}

// Partition splits the reached vertices by depth parity, each side in visit
// order. The start is on side a. On an odd cycle both ends of the closing
// edge land on the same side; no check is made.
func (r *BFSResult) Partition() (a, b []string) {
	for _, id := range r.Order {
		if r.Depth[id]&1 == 0 {
			a = append(a, id)
		} else {
			b = append(b, id)
		}
	}
	return a, b
}

// Layers groups the reached vertices by depth: Layers()[d] holds every
// vertex at distance d in visit order.
func (r *BFSResult) Layers() [][]string {
	var layers [][]string
	for _, id := range r.Order {
		d := r.Depth[id]
		if d == len(layers) {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], id)
	}
	return layers
}
