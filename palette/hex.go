// SPDX-License-Identifier: MIT
// Package: lvcolor/palette
//
// hex.go — color-space helpers on top of go-colorful: hex validation,
// deterministic generated palettes and terminal swatches.

package palette

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxGenerated is the largest palette Generate builds.
const MaxGenerated = 1024

// Generated palette parameters (HCL space keeps perceived lightness even).
const (
	generatedChroma   = 0.6
	generatedHueStart = 10.0
	goldenAngle       = 137.50776405003785

	// generateAttempts bounds the hue walk per requested color.
	generateAttempts = 64
)

// generatedLightness is cycled step by step so hues that collapse to the
// same hex at one lightness still yield new tokens at another.
var generatedLightness = [...]float64{0.65, 0.5, 0.8, 0.4, 0.72, 0.58}

// ValidateHex reports ErrInvalidHex for the first token that is not a
// #rrggbb color. Palettes of opaque non-hex tokens are legal; this check is
// for surfaces (CLI, HTTP) that render tokens as colors.
func (p Palette) ValidateHex() error {
	for i, tok := range p.tokens {
		if _, err := colorful.Hex(tok); err != nil {
			return fmt.Errorf("palette: position %d %q: %w", i, tok, ErrInvalidHex)
		}
	}
	return nil
}

// Generate returns a deterministic n-color palette. The reference colors
// come first; further colors step around the HCL hue wheel by the golden
// angle so neighbors in palette order stay visually distinct.
//
// Errors:
//   - ErrBadSize if n is outside [1, MaxGenerated].
func Generate(n int) (Palette, error) {
	if n < 1 || n > MaxGenerated {
		return Palette{}, fmt.Errorf("palette: n=%d not in [1, %d]: %w", n, MaxGenerated, ErrBadSize)
	}
	tokens := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for _, tok := range defaultTokens {
		if len(tokens) == n {
			break
		}
		tokens = append(tokens, tok)
		seen[tok] = true
	}
	for step := 0; len(tokens) < n; step++ {
		if step >= generateAttempts*n {
			return Palette{}, fmt.Errorf("palette: n=%d: only %d distinct colors: %w", n, len(tokens), ErrBadSize)
		}
		hue := math.Mod(generatedHueStart+float64(step)*goldenAngle, 360)
		light := generatedLightness[step%len(generatedLightness)]
		tok := colorful.Hcl(hue, generatedChroma, light).Clamped().Hex()
		if seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}

	return New(tokens...)
}

// Swatch renders tok as a two-cell ANSI true-color block followed by the
// token text. Non-hex tokens are returned unchanged.
func Swatch(tok string) string {
	c, err := colorful.Hex(tok)
	if err != nil {
		return tok
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m %s", r, g, b, tok)
}
