// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// registry.go — stable name → algorithm table.

package coloring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by Lookup for a name not in the registry.
var ErrUnknownAlgorithm = errors.New("coloring: unknown algorithm")

// Registry keys.
const (
	NameFirstFit    = "firstfit"
	NameCBIP        = "CBIP"
	NameGreedy      = "greedy"
	NameWelshPowell = "welshpowell"
)

// Algorithm describes one registered strategy.
type Algorithm struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Online      bool   `json:"online"`
	Fn          Func   `json:"-"`
}

// registry is fixed at init and never modified.
var registry = [...]Algorithm{
	{
		Name:        NameFirstFit,
		Title:       "First Fit",
		Description: "Arrival order; each vertex takes the first color unused by neighbors that arrived before it.",
		Online:      true,
		Fn:          FirstFit,
	},
	{
		Name:        NameCBIP,
		Title:       "CBIP",
		Description: "Arrival order; each vertex takes the first color unused on the opposite side of its component's bipartition.",
		Online:      true,
		Fn:          CBIP,
	},
	{
		Name:        NameGreedy,
		Title:       "Greedy",
		Description: "Descending degree order; each vertex takes the first color unused by already colored neighbors.",
		Fn:          Greedy,
	},
	{
		Name:        NameWelshPowell,
		Title:       "Welsh-Powell",
		Description: "Descending degree order; fills one color class at a time across the sorted vertices.",
		Fn:          WelshPowell,
	},
}

// Algorithms returns the registered strategies in comparison order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(registry))
	copy(out, registry[:])
	return out
}

// Names returns the registry keys in comparison order.
func Names() []string {
	out := make([]string, len(registry))
	for i, a := range registry {
		out[i] = a.Name
	}
	return out
}

// Lookup finds an algorithm by name, ignoring case and the separators
// ' ', '-' and '_' ("First Fit", "welsh-powell" and "cbip" all resolve).
func Lookup(name string) (Algorithm, error) {
	key := canonicalName(name)
	for _, a := range registry {
		if canonicalName(a.Name) == key {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("coloring: Lookup(%q): %w", name, ErrUnknownAlgorithm)
}

func canonicalName(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.TrimSpace(s)))
}
