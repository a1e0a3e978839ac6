// SPDX-License-Identifier: MIT
// Package: lvcolor/stepper
//
// options.go — Player configuration.
//
// Invalid option values do not panic; they are recorded and surfaced by
// NewPlayer as ErrOptionViolation.

package stepper

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrOptionViolation indicates an invalid Player option or argument.
	ErrOptionViolation = errors.New("stepper: invalid option value")

	// ErrAlreadyPlaying is returned by Play while another Play is running.
	ErrAlreadyPlaying = errors.New("stepper: already playing")
)

// Playback defaults: one step every 2s at 1x, speed within [0.5, 3].
const (
	DefaultInterval = 2 * time.Second
	DefaultSpeed    = 1.0
	MinSpeed        = 0.5
	MaxSpeed        = 3.0
	SpeedStep       = 0.5
)

// Option configures a Player.
type Option func(*playerOptions)

type playerOptions struct {
	interval time.Duration
	speed    float64
	logger   *zap.Logger
	onStep   func(k int)
	session  string
	err      error
}

func defaultPlayerOptions() playerOptions {
	return playerOptions{
		interval: DefaultInterval,
		speed:    DefaultSpeed,
		logger:   zap.NewNop(),
		onStep:   func(int) {},
	}
}

// WithInterval sets the delay between steps at 1x speed. d must be > 0.
func WithInterval(d time.Duration) Option {
	return func(o *playerOptions) {
		if d <= 0 {
			o.err = fmt.Errorf("stepper: interval %v must be > 0: %w", d, ErrOptionViolation)
			return
		}
		o.interval = d
	}
}

// WithSpeed sets the initial speed multiplier, within [MinSpeed, MaxSpeed].
func WithSpeed(s float64) Option {
	return func(o *playerOptions) {
		if err := validateSpeed(s); err != nil {
			o.err = err
			return
		}
		o.speed = s
	}
}

// WithLogger attaches a logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *playerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnStep registers a hook called with the new reveal count after every
// change made by Step, Seek, Reset or Play. It runs on the goroutine that
// made the change and must not call back into the Player.
func WithOnStep(fn func(k int)) Option {
	return func(o *playerOptions) {
		if fn != nil {
			o.onStep = fn
		}
	}
}

// WithSessionID overrides the generated session id used in log fields.
func WithSessionID(id string) Option {
	return func(o *playerOptions) {
		if id != "" {
			o.session = id
		}
	}
}

func validateSpeed(s float64) error {
	if s < MinSpeed || s > MaxSpeed {
		return fmt.Errorf("stepper: speed %.2f not in [%.1f, %.1f]: %w", s, MinSpeed, MaxSpeed, ErrOptionViolation)
	}
	return nil
}
