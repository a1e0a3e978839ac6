// SPDX-License-Identifier: MIT

// Package palette holds the ordered color list every coloring algorithm
// draws from.
//
// A Palette is injected configuration: position 0 is the preferred
// ("smallest") color, and two colorings agree on a vertex when they pick the
// same position. Tokens are opaque strings, usually #rrggbb hex values.
//
// What:
//
//   - Default: the reference ten-color palette.
//   - New / Parse / MustNew: validated custom palettes (non-empty, distinct).
//   - Generate(n): deterministic n-color palette extending the default in
//     HCL space via go-colorful.
//   - ValidateHex, Swatch: helpers for surfaces that render tokens as colors.
//
// Palettes are values; nothing in this package keeps mutable state.
package palette
