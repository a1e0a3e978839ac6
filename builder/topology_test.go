package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/builder"
)

func TestParseTopology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec         string
		wantV, wantE int
	}{
		{"path:6", 6, 5},
		{"cycle:5", 5, 5},
		{"Star:5", 5, 4},
		{"wheel:7", 7, 12},
		{"complete:4", 4, 6},
		{"grid:3:4", 12, 17},
		{"bipartite:2:3", 5, 6},
		{"sparse:6:1", 6, 15},
		{"sparse:6:0", 6, 0},
		{" forward:5 ", 5, -1},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			cons, err := builder.ParseTopology(tc.spec)
			require.NoError(t, err)
			vs, es, err := builder.BuildLists([]builder.BuilderOption{builder.WithSeed(7)}, cons)
			require.NoError(t, err)
			assert.Len(t, vs, tc.wantV)
			if tc.wantE >= 0 {
				assert.Len(t, es, tc.wantE)
			} else {
				assert.GreaterOrEqual(t, len(es), tc.wantV-1)
			}
		})
	}
}

func TestParseTopology_Errors(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"", "hypercube:3", "path", "path:x", "grid:3", "grid:3:4:5", "sparse:6", "sparse:6:half"} {
		_, err := builder.ParseTopology(spec)
		assert.ErrorIs(t, err, builder.ErrBadTopology, spec)
	}

	// sizes are checked when the graph is built
	cons, err := builder.ParseTopology("wheel:3")
	require.NoError(t, err)
	_, err = builder.BuildGraph(nil, cons)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestTopologies(t *testing.T) {
	t.Parallel()

	forms := builder.Topologies()
	assert.Len(t, forms, 9)
	assert.Contains(t, forms, "grid:rows:cols")
	assert.IsIncreasing(t, forms)
}
