// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach context with %w, e.g. "Path: n=1 < min=2: <sentinel>".
//   • Runtime paths never panic; panics are confined to WithX option
//     constructors that receive meaningless values.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph insertion that
// the store refused.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownSample indicates a sample size with no reference graph.
var ErrUnknownSample = errors.New("builder: unknown sample size")

// ErrBadTopology indicates a topology string ParseTopology cannot read.
var ErrBadTopology = errors.New("builder: bad topology")
