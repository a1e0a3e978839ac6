package stepper_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/palette"
	"github.com/katalvlaran/lvcolor/stepper"
)

func TestTrace_Greedy(t *testing.T) {
	vs := []string{"A", "B", "C"}
	es := []coloring.Edge{coloring.NewEdge("A", "B"), coloring.NewEdge("B", "C")}
	pal := palette.Default()

	steps := stepper.Trace(coloring.Greedy, vs, es)
	require.Len(t, steps, 4)

	assert.Equal(t, 0, steps[0].K)
	assert.Empty(t, steps[0].Current)
	assert.Empty(t, steps[0].Result.Coloring)

	assert.Equal(t, "C", steps[3].Current)
	assert.Equal(t, []string{"A", "B"}, steps[3].Recolored)
	assert.Equal(t, pal.At(1), steps[3].Result.Coloring["A"])
	assert.Equal(t, coloring.Stats{TotalColors: 2}, steps[3].Stats)
	assert.Equal(t, 2, stepper.RecolorCount(steps))
}

func TestTrace_FirstFitNeverRecolors(t *testing.T) {
	for _, size := range builder.SampleSizes() {
		vs, es, err := builder.BuildLists(nil, builder.Sample(size))
		require.NoError(t, err)
		steps := stepper.Trace(coloring.FirstFit, vs, es)
		assert.Zero(t, stepper.RecolorCount(steps), "size=%d", size)
		for k, s := range steps {
			assert.Equal(t, k, s.K)
			assert.Zero(t, s.Stats.Conflicts)
		}
	}
}

func TestTrace_WithPalette(t *testing.T) {
	vs := []string{"A", "B", "C"}
	es := []coloring.Edge{coloring.NewEdge("A", "B"), coloring.NewEdge("B", "C"), coloring.NewEdge("C", "A")}
	steps := stepper.Trace(coloring.FirstFit, vs, es, coloring.WithPalette(palette.MustNew("x", "y")))
	assert.Equal(t, []string{"C"}, steps[3].Result.Uncolored)
}

func TestCompareTrace(t *testing.T) {
	vs, es, err := builder.BuildLists(nil, builder.Sample(8))
	require.NoError(t, err)

	steps := stepper.CompareTrace(vs, es)
	require.Len(t, steps, len(vs)+1)
	for k, s := range steps {
		assert.Equal(t, k, s.K)
		require.Len(t, s.Comparison.Entries, 4)
		assert.Equal(t, coloring.Compare(vs, es, k), s.Comparison)
	}
	assert.Equal(t, "H", steps[8].Current)
}

func TestNewPlayer_Errors(t *testing.T) {
	_, err := stepper.NewPlayer(-1)
	assert.ErrorIs(t, err, stepper.ErrOptionViolation)

	_, err = stepper.NewPlayer(3, stepper.WithSpeed(5))
	assert.ErrorIs(t, err, stepper.ErrOptionViolation)

	_, err = stepper.NewPlayer(3, stepper.WithInterval(0))
	assert.ErrorIs(t, err, stepper.ErrOptionViolation)
}

func TestPlayer_Manual(t *testing.T) {
	var got []int
	p, err := stepper.NewPlayer(3,
		stepper.WithLogger(zaptest.NewLogger(t)),
		stepper.WithOnStep(func(k int) { got = append(got, k) }),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())

	assert.True(t, p.Step())
	assert.True(t, p.Step())
	assert.True(t, p.Step())
	assert.False(t, p.Step())
	assert.True(t, p.Done())
	assert.Equal(t, 3, p.Current())

	require.ErrorIs(t, p.Seek(4), stepper.ErrOptionViolation)
	require.NoError(t, p.Seek(1))
	p.Reset()
	assert.Equal(t, 0, p.Current())

	assert.Equal(t, []int{1, 2, 3, 1, 0}, got)
}

func TestPlayer_Speed(t *testing.T) {
	p, err := stepper.NewPlayer(3)
	require.NoError(t, err)
	assert.Equal(t, stepper.DefaultInterval, p.Interval())

	require.NoError(t, p.SetSpeed(2))
	assert.Equal(t, time.Second, p.Interval())
	require.NoError(t, p.SetSpeed(stepper.MinSpeed))
	assert.Equal(t, 4*time.Second, p.Interval())

	assert.ErrorIs(t, p.SetSpeed(0.25), stepper.ErrOptionViolation)
	assert.ErrorIs(t, p.SetSpeed(3.5), stepper.ErrOptionViolation)
	assert.Equal(t, stepper.MinSpeed, p.Speed())
}

func TestPlayer_PlayToEnd(t *testing.T) {
	var (
		mu  sync.Mutex
		got []int
	)
	p, err := stepper.NewPlayer(4,
		stepper.WithInterval(time.Millisecond),
		stepper.WithSpeed(stepper.MaxSpeed),
		stepper.WithLogger(zaptest.NewLogger(t)),
		stepper.WithSessionID("test-session"),
		stepper.WithOnStep(func(k int) {
			mu.Lock()
			got = append(got, k)
			mu.Unlock()
		}),
	)
	require.NoError(t, err)

	require.NoError(t, p.Play(context.Background()))
	assert.True(t, p.Done())
	assert.False(t, p.Playing())

	mu.Lock()
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	mu.Unlock()

	// playing from the end is a no-op
	require.NoError(t, p.Play(context.Background()))
}

func TestPlayer_Cancel(t *testing.T) {
	p, err := stepper.NewPlayer(4, stepper.WithInterval(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Play(ctx), context.Canceled)
	assert.Equal(t, 0, p.Current())
}

func TestPlayer_PauseAndBusy(t *testing.T) {
	p, err := stepper.NewPlayer(4, stepper.WithInterval(time.Hour), stepper.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- p.Play(context.Background()) }()
	require.Eventually(t, p.Playing, time.Second, time.Millisecond)

	assert.ErrorIs(t, p.Play(context.Background()), stepper.ErrAlreadyPlaying)

	p.Pause()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Play did not return after Pause")
	}
	assert.Equal(t, 0, p.Current())
	assert.False(t, p.Playing())
}
