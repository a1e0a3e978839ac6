package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/bfs"
	"github.com/katalvlaran/lvcolor/core"
)

func pathGraph(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < len(ids); i++ {
		_, err := g.AddEdge(ids[i-1], ids[i])
		require.NoError(t, err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial component.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])

	a, b := res.Partition()
	assert.Equal(t, []string{"A"}, a)
	assert.Empty(t, b)
}

// TestBFS_ComponentOnly ensures vertices outside the start's component are
// never visited.
func TestBFS_ComponentOnly(t *testing.T) {
	g := pathGraph(t, "A", "B", "C")
	_, err := g.AddEdge("X", "Y")
	require.NoError(t, err)

	res, err := bfs.BFS(g, "B")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.Order)
	assert.NotContains(t, res.Depth, "X")
}

// TestBFS_PartitionPath checks depth-parity sides on a path.
func TestBFS_PartitionPath(t *testing.T) {
	g := pathGraph(t, "A", "B", "C", "D")

	res, err := bfs.BFS(g, "C")
	require.NoError(t, err)

	a, b := res.Partition()
	assert.Equal(t, []string{"C", "A"}, a)
	assert.Equal(t, []string{"B", "D"}, b)
	assert.Equal(t, [][]string{{"C"}, {"B", "D"}, {"A"}}, res.Layers())

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, path)
	_, err = res.PathTo("Z")
	assert.Error(t, err)
}

// TestBFS_OddCycle still splits an odd cycle; both ends of the closing edge
// land on the same side.
func TestBFS_OddCycle(t *testing.T) {
	g := pathGraph(t, "A", "B", "C")
	_, err := g.AddEdge("C", "A")
	require.NoError(t, err)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	a, b := res.Partition()
	assert.Equal(t, []string{"A"}, a)
	assert.Equal(t, []string{"B", "C"}, b)
}

// TestBFS_MaxDepthAndFilter covers depth limiting and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := pathGraph(t, "A", "B", "C", "D")

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Hooks verifies enqueue ordering and visit abort.
func TestBFS_Hooks(t *testing.T) {
	g := pathGraph(t, "A", "B", "C")

	var enq []string
	res, err := bfs.BFS(g, "A", bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }))
	require.NoError(t, err)
	assert.Equal(t, res.Order, enq)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}
