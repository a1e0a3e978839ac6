// SPDX-License-Identifier: MIT
// Package: lvcolor/bfs
//
// bfs.go — frontier-by-frontier breadth-first traversal.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// BFS walks the component of start one frontier (depth) at a time.
// Vertices inside a frontier are visited in discovery order and neighbors
// are discovered in core arrival order, so the result is reproducible.
//
// On a hook or graph error the partial result is returned with the error.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//     or the OnVisit hook's error (wrapped).
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start %q: %w", start, ErrStartVertexNotFound)
	}

	res := newResult(g.VertexCount())
	res.Depth[start] = 0
	cfg.onEnqueue(start, 0)

	frontier := []string{start}
	for depth := 0; len(frontier) > 0; depth++ {
		var next []string
		expand := cfg.maxDepth == 0 || depth < cfg.maxDepth
		for _, id := range frontier {
			res.Order = append(res.Order, id)
			if err := cfg.onVisit(id, depth); err != nil {
				return res, fmt.Errorf("bfs: visit %q: %w", id, err)
			}
			if !expand {
				continue
			}
			nbrs, err := g.NeighborIDs(id)
			if err != nil {
				return res, fmt.Errorf("%w: %q: %w", ErrNeighbors, id, err)
			}
			for _, nbr := range nbrs {
				if _, seen := res.Depth[nbr]; seen || !cfg.keep(id, nbr) {
					continue
				}
				res.Depth[nbr] = depth + 1
				res.Parent[nbr] = id
				cfg.onEnqueue(nbr, depth+1)
				next = append(next, nbr)
			}
		}
		frontier = next
	}

	return res, nil
}
