// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph fixtures for the coloring
// engine: the reference sample graphs and a handful of classic topologies.
//
// Every constructor adds vertices in a documented order. That order is the
// arrival order the online algorithms see, so it is part of each
// constructor's contract alongside the edge set.
//
// Components:
//
//   - Orchestration: BuildGraph(bopts, cons...) runs constructors against a
//     fresh core.Graph; BuildLists returns the (vertices, edges) lists the
//     coloring algorithms take.
//   - Samples: Sample(size) for the 5, 7, 8, 10, 12 and 16 vertex reference
//     graphs, SampleStrict without the path fallback, SampleSizes, Samples.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, Grid,
//     CompleteBipartite.
//   - Stochastic: RandomSparse (G(n,p)) and RandomForward (path backbone
//     plus random forward edges); both need WithSeed or WithRand.
//   - ID schemes (IDFn): ExcelColumnIDFn (default), SymbolIDFn,
//     DefaultIDFn, SymbolNumberIDFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Invalid sizes or probabilities return sentinel errors; only WithX
//     option constructors panic, and only on nil inputs.
package builder
