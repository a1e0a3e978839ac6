// SPDX-License-Identifier: MIT
// Package: lvcolor/palette
//
// palette.go — the ordered, finite set of color tokens shared by every
// coloring algorithm.
//
// Contract:
//   • Position is preference: index 0 is the "smallest" color.
//   • Tokens are opaque, non-empty and distinct; equality is by position.
//   • A Palette value is never mutated after construction; accessors copy.

package palette

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for palette construction.
var (
	// ErrEmptyPalette indicates a palette with no tokens.
	ErrEmptyPalette = errors.New("palette: no tokens")

	// ErrEmptyToken indicates an empty string among the tokens.
	ErrEmptyToken = errors.New("palette: empty token")

	// ErrDuplicateToken indicates the same token appears twice.
	ErrDuplicateToken = errors.New("palette: duplicate token")

	// ErrInvalidHex indicates a token that is not a #rrggbb color.
	ErrInvalidHex = errors.New("palette: invalid hex color")

	// ErrBadSize indicates a generated palette size outside [1, MaxGenerated].
	ErrBadSize = errors.New("palette: invalid size")
)

// defaultTokens is the reference ten-color palette.
var defaultTokens = [...]string{
	"#ef4444", // red
	"#3b82f6", // blue
	"#10b981", // emerald
	"#f59e0b", // amber
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#84cc16", // lime
	"#f97316", // orange
	"#6366f1", // indigo
}

// Palette is an immutable ordered list of distinct color tokens.
type Palette struct {
	tokens []string
	index  map[string]int
}

// Default returns the reference ten-color palette.
func Default() Palette {
	p, _ := New(defaultTokens[:]...)
	return p
}

// New validates tokens and returns a Palette that owns a copy of them.
//
// Errors:
//   - ErrEmptyPalette, ErrEmptyToken, ErrDuplicateToken.
func New(tokens ...string) (Palette, error) {
	if len(tokens) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	p := Palette{
		tokens: make([]string, len(tokens)),
		index:  make(map[string]int, len(tokens)),
	}
	for i, tok := range tokens {
		if tok == "" {
			return Palette{}, fmt.Errorf("palette: position %d: %w", i, ErrEmptyToken)
		}
		if j, dup := p.index[tok]; dup {
			return Palette{}, fmt.Errorf("palette: %q at %d and %d: %w", tok, j, i, ErrDuplicateToken)
		}
		p.tokens[i] = tok
		p.index[tok] = i
	}

	return p, nil
}

// Parse splits a comma-separated token list ("#aa0000, #00aa00") and builds
// a Palette from it. Surrounding whitespace is trimmed.
func Parse(s string) (Palette, error) {
	if strings.TrimSpace(s) == "" {
		return Palette{}, ErrEmptyPalette
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return New(parts...)
}

// MustNew is New that panics on invalid input. Use it for literals in tests
// and package-level fixtures only.
func MustNew(tokens ...string) Palette {
	p, err := New(tokens...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of tokens. The zero Palette has length 0.
func (p Palette) Len() int { return len(p.tokens) }

// IsZero reports whether p was never constructed.
func (p Palette) IsZero() bool { return len(p.tokens) == 0 }

// At returns the token at position i.
func (p Palette) At(i int) string { return p.tokens[i] }

// Index returns the position of tok, or -1 when tok is not in the palette.
func (p Palette) Index(tok string) int {
	if i, ok := p.index[tok]; ok {
		return i
	}
	return -1
}

// Tokens returns a copy of the ordered tokens.
func (p Palette) Tokens() []string {
	out := make([]string, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// FirstFree returns the earliest token for which used reports false.
// The boolean is false when every token is taken.
func (p Palette) FirstFree(used func(tok string) bool) (string, bool) {
	for _, tok := range p.tokens {
		if !used(tok) {
			return tok, true
		}
	}
	return "", false
}

// String renders the palette as a comma-separated list.
func (p Palette) String() string { return strings.Join(p.tokens, ",") }
