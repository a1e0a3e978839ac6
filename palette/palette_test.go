package palette_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/palette"
)

func TestDefault(t *testing.T) {
	p := palette.Default()
	require.Equal(t, 10, p.Len())
	assert.Equal(t, "#ef4444", p.At(0))
	assert.Equal(t, "#6366f1", p.At(9))
	assert.Equal(t, 1, p.Index("#3b82f6"))
	assert.Equal(t, -1, p.Index("#000000"))
	assert.NoError(t, p.ValidateHex())
}

func TestNew_Errors(t *testing.T) {
	_, err := palette.New()
	assert.ErrorIs(t, err, palette.ErrEmptyPalette)

	_, err = palette.New("red", "")
	assert.ErrorIs(t, err, palette.ErrEmptyToken)

	_, err = palette.New("red", "blue", "red")
	assert.ErrorIs(t, err, palette.ErrDuplicateToken)

	assert.Panics(t, func() { palette.MustNew() })
}

func TestNew_OwnsCopy(t *testing.T) {
	in := []string{"x", "y"}
	p, err := palette.New(in...)
	require.NoError(t, err)
	in[0] = "z"
	assert.Equal(t, "x", p.At(0))

	out := p.Tokens()
	out[1] = "w"
	assert.Equal(t, "y", p.At(1))
}

func TestParse(t *testing.T) {
	p, err := palette.Parse(" #aa0000, #00aa00 ,#0000aa")
	require.NoError(t, err)
	assert.Equal(t, []string{"#aa0000", "#00aa00", "#0000aa"}, p.Tokens())
	assert.Equal(t, "#aa0000,#00aa00,#0000aa", p.String())

	_, err = palette.Parse("  ")
	assert.ErrorIs(t, err, palette.ErrEmptyPalette)

	_, err = palette.Parse("a,,b")
	assert.ErrorIs(t, err, palette.ErrEmptyToken)
}

func TestFirstFree(t *testing.T) {
	p := palette.MustNew("a", "b", "c")
	used := map[string]bool{"a": true, "c": true}

	tok, ok := p.FirstFree(func(s string) bool { return used[s] })
	require.True(t, ok)
	assert.Equal(t, "b", tok)

	used["b"] = true
	_, ok = p.FirstFree(func(s string) bool { return used[s] })
	assert.False(t, ok)
}

func TestValidateHex(t *testing.T) {
	assert.NoError(t, palette.MustNew("#000000", "#ffffff").ValidateHex())
	assert.ErrorIs(t, palette.MustNew("#000000", "blue").ValidateHex(), palette.ErrInvalidHex)
}

func TestGenerate(t *testing.T) {
	_, err := palette.Generate(0)
	assert.ErrorIs(t, err, palette.ErrBadSize)

	small, err := palette.Generate(3)
	require.NoError(t, err)
	assert.Equal(t, palette.Default().Tokens()[:3], small.Tokens())

	big, err := palette.Generate(24)
	require.NoError(t, err)
	require.Equal(t, 24, big.Len())
	assert.Equal(t, palette.Default().Tokens(), big.Tokens()[:10])
	assert.NoError(t, big.ValidateHex())

	again, err := palette.Generate(24)
	require.NoError(t, err)
	assert.Equal(t, big.Tokens(), again.Tokens(), "generation must be deterministic")
}

func TestGenerate_SizeCap(t *testing.T) {
	_, err := palette.Generate(palette.MaxGenerated + 1)
	assert.ErrorIs(t, err, palette.ErrBadSize)

	_, err = palette.Generate(100_000_000)
	assert.ErrorIs(t, err, palette.ErrBadSize)

	wide, err := palette.Generate(256)
	require.NoError(t, err)
	assert.Equal(t, 256, wide.Len())
	assert.NoError(t, wide.ValidateHex())
}

func TestSwatch(t *testing.T) {
	s := palette.Swatch("#ff0000")
	assert.True(t, strings.HasPrefix(s, "\x1b[48;2;255;0;0m"))
	assert.True(t, strings.HasSuffix(s, "#ff0000"))
	assert.Equal(t, "plain", palette.Swatch("plain"))
}
