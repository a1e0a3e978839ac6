// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// samples.go — the reference sample graphs used by the visualizer.
//
// Every sample labels its vertices "A", "B", … in arrival order and emits
// its edges in the listed order, keeping each pair's orientation as
// written. The IDs are fixed; cfg.idFn does not apply.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcolor/core"
)

const methodSample = "Sample"

// DefaultSampleSize is the size of the fallback sample (the path A–E).
const DefaultSampleSize = 5

// SampleInfo describes one reference graph.
type SampleInfo struct {
	Size        int    `json:"size" yaml:"size"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	EdgeCount   int    `json:"edges" yaml:"edges"`
}

type sampleDef struct {
	name, description string
	pairs             []string // "AB" ⇒ A — B
}

var samples = map[int]sampleDef{
	5: {
		name:        "order-sensitive",
		description: "Order matters: FirstFit may use more colors than the degree-ordered algorithms.",
		pairs:       []string{"AB", "AC", "AD", "BC", "BE", "CD", "DE"},
	},
	7: {
		name:        "dense-7",
		description: "Dense graph that is challenging for every algorithm.",
		pairs:       []string{"BA", "DB", "DG", "EA", "EC", "ED", "FB", "FC", "FE", "GE", "GF"},
	},
	8: {
		name:        "near-complete-8",
		description: "Extremely dense, close to a complete graph.",
		pairs: []string{
			"AB", "AC", "AD", "AE", "AF", "BC", "BD", "BG",
			"CE", "CH", "DF", "DG", "EH", "FG", "FH", "GH",
		},
	},
	10: {
		name:        "hubs-10",
		description: "Several high-degree vertices; FirstFit struggles.",
		pairs: []string{
			"AB", "AC", "AD", "AE", "BF", "BG", "CH", "DI", "EJ",
			"FG", "FH", "GI", "HJ", "IJ", "AF", "BH", "CI",
		},
	},
	12: {
		name:        "dense-12",
		description: "Extremely dense; shows clear differences between algorithms.",
		pairs: []string{
			"AB", "AC", "AD", "AE", "BF", "BG", "CH", "DI", "EJ", "FK", "GL",
			"HI", "HJ", "IK", "JL", "KL", "AF", "BH", "CI", "DJ", "EK", "FG",
		},
	},
	16: {
		name:        "clebsch-like-16",
		description: "Dense 16-vertex structure that separates the algorithms' color counts.",
		pairs: []string{
			"AB", "AC", "AD", "AE", "AF",
			"BC", "BG", "BH", "BI",
			"CD", "CJ", "CK",
			"DE", "DL", "DM",
			"EF", "EN", "EO",
			"FG", "FP", "FH",
			"GH", "GI", "GJ",
			"HK", "HL",
			"IJ", "IM", "IN",
			"JK", "JO",
			"KL", "KP",
			"LM", "LN",
			"MN", "MO",
			"NP",
			"OP",
			"AG", "BJ", "CL", "DN", "EP", "FI", "GK", "HM", "IO", "JL", "KN", "LO", "MP",
		},
	},
}

var defaultSample = sampleDef{
	name:        "path-5",
	description: "Simple path A–B–C–D–E.",
	pairs:       []string{"AB", "BC", "CD", "DE"},
}

// SampleSizes lists the sizes that have a reference graph, ascending.
func SampleSizes() []int {
	sizes := make([]int, 0, len(samples))
	for n := range samples {
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)
	return sizes
}

// Samples describes every reference graph, ascending by size.
func Samples() []SampleInfo {
	out := make([]SampleInfo, 0, len(samples))
	for _, n := range SampleSizes() {
		d := samples[n]
		out = append(out, SampleInfo{Size: n, Name: d.name, Description: d.description, EdgeCount: len(d.pairs)})
	}
	return out
}

// Sample returns the reference graph with size vertices; an unknown size
// falls back to DefaultSample.
func Sample(size int) Constructor {
	if d, ok := samples[size]; ok {
		return d.constructor(size)
	}
	return DefaultSample()
}

// SampleStrict is Sample without the fallback.
func SampleStrict(size int) (Constructor, error) {
	d, ok := samples[size]
	if !ok {
		return nil, fmt.Errorf("%s: size=%d (known %v): %w", methodSample, size, SampleSizes(), ErrUnknownSample)
	}
	return d.constructor(size), nil
}

// DefaultSample returns the fallback path A–B–C–D–E.
func DefaultSample() Constructor {
	return defaultSample.constructor(DefaultSampleSize)
}

func (d sampleDef) constructor(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := addVertices(g, methodSample, indexIDs(builderConfig{idFn: ExcelColumnIDFn}, 0, n)...); err != nil {
			return err
		}
		for _, p := range d.pairs {
			if err := addEdge(g, methodSample, p[:1], p[1:]); err != nil {
				return err
			}
		}
		return nil
	}
}
