// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, visit order and the depth-parity partition
// of the reachable component.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence (the connected component of the start vertex)
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.NeighborIDs returns neighbors in arrival order and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Partition
//
//	BFSResult.Partition splits the visited vertices by depth parity: even
//	depths (the start vertex included) form side A, odd depths side B. On an
//	odd cycle the split is still produced; it is simply not a proper
//	two-coloring. No odd-cycle detection is performed.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "A")
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors or a hook error
//	}
//	sideA, sideB := res.Partition()
package bfs
