// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = ExcelColumnIDFn   ("A","B",…,"Z","AA",…)
//   • rng         = nil               (pure unless seeded)
//   • left/right  = "L" / "R"
//   • centerID    = "Center"

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// idFn maps an arrival index to a vertex ID.
	idFn IDFn

	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand

	// Bipartite ID prefixes. Empty resolves to the defaults.
	leftPrefix  string
	rightPrefix string

	// centerID names the hub of Star and Wheel.
	centerID string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	defaultCenterID    = "Center"
)

// newBuilderConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        ExcelColumnIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		centerID:    defaultCenterID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	if cfg.centerID == "" {
		cfg.centerID = defaultCenterID
	}

	return cfg
}
