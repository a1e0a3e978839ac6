// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// TestGraph_AddRemoveVertex covers idempotent insertion, empty IDs and removal.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA)) // duplicate is a no-op
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(""))

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(VertexA))
	assert.False(t, g.HasVertex(VertexA))
}

// TestGraph_ArrivalOrder checks that Vertices, Position and NeighborIDs follow
// insertion order rather than lexicographic order.
func TestGraph_ArrivalOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{VertexD, VertexB, VertexA, VertexC} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge(VertexB, VertexC)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexD)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)

	assert.Equal(t, []string{VertexD, VertexB, VertexA, VertexC}, g.Vertices())

	pos, ok := g.Position(VertexA)
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	nbrs, err := g.NeighborIDs(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexD, VertexA, VertexC}, nbrs)

	earlier, err := g.EarlierNeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB}, earlier)

	earlier, err = g.EarlierNeighborIDs(VertexD)
	require.NoError(t, err)
	assert.Empty(t, earlier)
}

// TestGraph_AddEdgeConstraints covers loop and parallel-edge rejection.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", VertexA)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexA)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	_, err = g.AddEdge(VertexB, VertexA)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.Equal(t, []string{VertexA, VertexB}, g.Vertices())
}

// TestGraph_RemoveEdge covers removal by ID and by endpoints.
func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	e1, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexC)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e1))
	require.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge(VertexA, VertexB))

	require.NoError(t, g.RemoveEdgeBetween(VertexC, VertexB))
	require.ErrorIs(t, g.RemoveEdgeBetween(VertexC, VertexB), core.ErrEdgeNotFound)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 3, g.VertexCount())
}

// TestGraph_RemoveVertexCompactsOrder checks incident edges go away and
// positions of later vertices shift down.
func TestGraph_RemoveVertexCompactsOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB)
	_, _ = g.AddEdge(VertexB, VertexC)
	_, _ = g.AddEdge(VertexC, VertexD)

	require.NoError(t, g.RemoveVertex(VertexB))
	assert.Equal(t, []string{VertexA, VertexC, VertexD}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())

	pos, ok := g.Position(VertexC)
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	d, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

// TestGraph_EdgesInsertionOrder checks Edges() ordering and copy semantics.
func TestGraph_EdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for i, pair := range [][2]string{{"A", "B"}, {"C", "A"}, {"B", "C"}, {"D", "A"}, {"B", "D"}, {"C", "D"}, {"E", "A"}, {"E", "B"}, {"E", "C"}, {"E", "D"}, {"F", "A"}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err, "edge %d", i)
	}

	edges := g.Edges()
	require.Len(t, edges, 11)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e11", edges[10].ID)
	assert.Equal(t, "C", edges[1].From)
	assert.Equal(t, "C", edges[1].Other("A"))
	assert.Equal(t, "", edges[1].Other("Z"))

	edges[0].From = "Z"
	got, err := g.GetEdge("e1")
	require.NoError(t, err)
	assert.Equal(t, "A", got.From)

	_, err = g.GetEdge("e99")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestInducedSubgraph keeps order and only edges with both endpoints kept.
func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB)
	_, _ = g.AddEdge(VertexB, VertexC)
	_, _ = g.AddEdge(VertexC, VertexD)

	sub := core.InducedSubgraph(g, map[string]bool{VertexA: true, VertexB: true, VertexD: true})
	assert.Equal(t, []string{VertexA, VertexB, VertexD}, sub.Vertices())
	assert.Equal(t, 1, sub.EdgeCount())
	assert.True(t, sub.HasEdge(VertexA, VertexB))

	// source untouched
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

// TestClone_EdgeIDContinuity checks that a clone continues the ID sequence.
func TestClone_EdgeIDContinuity(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB)
	_, _ = g.AddEdge(VertexB, VertexC)

	c := g.Clone()
	eid, err := c.AddEdge(VertexA, VertexC)
	require.NoError(t, err)
	assert.Equal(t, "e3", eid)
	assert.False(t, g.HasEdge(VertexA, VertexC))
}

// TestStats covers max degree and isolated counts.
func TestStats(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB)
	_, _ = g.AddEdge(VertexA, VertexC)
	_ = g.AddVertex(VertexD)

	s := g.Stats()
	assert.Equal(t, core.GraphStats{VertexCount: 4, EdgeCount: 2, MaxDegree: 2, Isolated: 1}, s)
}

// TestConcurrentAddEdge hammers AddEdge from several goroutines; every
// distinct pair must be stored exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	const workers = 8
	g := core.NewGraph()

	var wg sync.WaitGroup
	errs := make(chan error, workers*workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < workers; i++ {
				for j := i + 1; j < workers; j++ {
					_, err := g.AddEdge(string(rune('A'+i)), string(rune('A'+j)))
					if err != nil && err != core.ErrMultiEdgeNotAllowed {
						errs <- err
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
	assert.Equal(t, workers*(workers-1)/2, g.EdgeCount())
}
