package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
)

// TestConstructors runs each topology through BuildGraph and checks sizes,
// arrival order and a sample of edges.
func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		opts   []builder.BuilderOption
		wantV  int
		wantE  int
		order  []string
		edges  [][2]string
		colors int // Greedy colors on the full graph
	}{
		{
			name: "Path(4)", ctor: builder.Path(4),
			wantV: 4, wantE: 3, order: []string{"A", "B", "C", "D"},
			edges: [][2]string{{"A", "B"}, {"C", "D"}}, colors: 2,
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5),
			wantV: 5, wantE: 5, order: []string{"A", "B", "C", "D", "E"},
			edges: [][2]string{{"E", "A"}}, colors: 3,
		},
		{
			name: "Star(4)", ctor: builder.Star(4),
			wantV: 4, wantE: 3, order: []string{"Center", "A", "B", "C"},
			edges: [][2]string{{"Center", "C"}}, colors: 2,
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), opts: []builder.BuilderOption{builder.WithCenterID("H")},
			wantV: 5, wantE: 8, order: []string{"H", "A", "B", "C", "D"},
			edges: [][2]string{{"D", "A"}, {"H", "B"}}, colors: 3,
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), opts: []builder.BuilderOption{builder.WithDefaultIDs()},
			wantV: 4, wantE: 6, order: []string{"0", "1", "2", "3"},
			edges: [][2]string{{"0", "3"}, {"1", "2"}}, colors: 4,
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3),
			wantV: 6, wantE: 7, order: []string{"A", "B", "C", "D", "E", "F"},
			edges: [][2]string{{"A", "B"}, {"A", "D"}, {"C", "F"}}, colors: 2,
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6, order: []string{"L0", "R0", "L1", "R1", "R2"},
			edges: [][2]string{{"L1", "R2"}}, colors: 2,
		},
		{
			name: "CompleteBipartite prefixes", ctor: builder.CompleteBipartite(1, 1),
			opts:  []builder.BuilderOption{builder.WithPartitionPrefix("x", "")},
			wantV: 2, wantE: 1, order: []string{"x0", "R0"},
			edges: [][2]string{{"x0", "R0"}}, colors: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.order, g.Vertices())
			for _, e := range tc.edges {
				assert.True(t, g.HasEdge(e[0], e[1]), "missing %s-%s", e[0], e[1])
			}

			vs, es := coloring.FromGraph(g)
			res := coloring.Greedy(vs, es, len(vs))
			assert.Equal(t, tc.colors, res.TotalColors)
		})
	}
}

// TestConstructorErrors checks sentinel errors for invalid parameters.
func TestConstructorErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", builder.CompleteBipartite(0, 1), builder.ErrTooFewVertices},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomForward(1)", builder.RandomForward(1), builder.ErrTooFewVertices},
		{"RandomForward(no rng)", builder.RandomForward(4), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuildGraph_Composition checks that a repeated vertex ID across
// constructors is rejected as a duplicate edge but not as a vertex.
func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Star(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Center"}, g.Vertices())

	_, err = builder.BuildGraph(nil, builder.Path(3), builder.Path(3))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestRandomSparse(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())

	g, err = builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())

	opts := []builder.BuilderOption{builder.WithSeed(7)}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.AdjacencyList(), b.AdjacencyList())
}

func TestRandomForward(t *testing.T) {
	const n = 10
	r := rand.New(rand.NewSource(42))
	vs, es, err := builder.BuildLists([]builder.BuilderOption{builder.WithRand(r)}, builder.RandomForward(n))
	require.NoError(t, err)
	require.Len(t, vs, n)

	pos := make(map[string]int, n)
	for i, v := range vs {
		pos[v] = i
	}
	for i := 1; i < n; i++ {
		assert.Equal(t, coloring.NewEdge(vs[i-1], vs[i]), es[i-1], "backbone edge %d", i)
	}
	for _, e := range es {
		u, v := e.Endpoints()
		assert.Less(t, pos[u], pos[v], "edge %s-%s must point forward", u, v)
	}

	again, esAgain, err := builder.BuildLists([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomForward(n))
	require.NoError(t, err)
	assert.Equal(t, vs, again)
	assert.Equal(t, es, esAgain)
}

func TestBuildLists_Error(t *testing.T) {
	_, _, err := builder.BuildLists(nil, builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}
