// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// topology.go — textual topology selectors ("path:6", "grid:3:4").
//
// Grammar: name[:arg]... with the name matched case-insensitively.
//   path:n  cycle:n  star:n  wheel:n  complete:n  forward:n
//   grid:rows:cols  bipartite:n1:n2  sparse:n:p
// Size checks stay with the constructors.

package builder

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const methodParseTopology = "ParseTopology"

type topologyDef struct {
	usage string
	build func(args []string) (Constructor, error)
}

var topologies = map[string]topologyDef{
	"path":      {"path:n", oneInt(Path)},
	"cycle":     {"cycle:n", oneInt(Cycle)},
	"star":      {"star:n", oneInt(Star)},
	"wheel":     {"wheel:n", oneInt(Wheel)},
	"complete":  {"complete:n", oneInt(Complete)},
	"forward":   {"forward:n", oneInt(RandomForward)},
	"grid":      {"grid:rows:cols", twoInts(Grid)},
	"bipartite": {"bipartite:n1:n2", twoInts(CompleteBipartite)},
	"sparse":    {"sparse:n:p", sparseArgs},
}

// Topologies lists the accepted selector forms, sorted.
func Topologies() []string {
	out := make([]string, 0, len(topologies))
	for _, d := range topologies {
		out = append(out, d.usage)
	}
	slices.Sort(out)
	return out
}

// ParseTopology turns a selector such as "wheel:7" or "grid:3:4" into its
// Constructor. forward and sparse need WithSeed or WithRand at build time.
//
// Errors:
//   - ErrBadTopology for an unknown name, a wrong argument count or an
//     unparsable number.
func ParseTopology(spec string) (Constructor, error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	def, ok := topologies[strings.ToLower(parts[0])]
	if !ok {
		return nil, fmt.Errorf("%s(%q): unknown name (known %v): %w", methodParseTopology, spec, Topologies(), ErrBadTopology)
	}
	cons, err := def.build(parts[1:])
	if err != nil {
		return nil, fmt.Errorf("%s(%q): want %s: %w", methodParseTopology, spec, def.usage, err)
	}
	return cons, nil
}

func oneInt(fn func(int) Constructor) func([]string) (Constructor, error) {
	return func(args []string) (Constructor, error) {
		ns, err := ints(args, 1)
		if err != nil {
			return nil, err
		}
		return fn(ns[0]), nil
	}
}

func twoInts(fn func(int, int) Constructor) func([]string) (Constructor, error) {
	return func(args []string) (Constructor, error) {
		ns, err := ints(args, 2)
		if err != nil {
			return nil, err
		}
		return fn(ns[0], ns[1]), nil
	}
}

func sparseArgs(args []string) (Constructor, error) {
	if len(args) != 2 {
		return nil, ErrBadTopology
	}
	ns, err := ints(args[:1], 1)
	if err != nil {
		return nil, err
	}
	p, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTopology, err)
	}
	return RandomSparse(ns[0], p), nil
}

func ints(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, ErrBadTopology
	}
	out := make([]int, want)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadTopology, err)
		}
		out[i] = n
	}
	return out, nil
}
