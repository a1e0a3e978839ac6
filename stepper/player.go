// SPDX-License-Identifier: MIT
// Package: lvcolor/stepper
//
// player.go — the reveal-count state machine behind step / play / pause.
//
// The Player owns only k. Callers recompute the coloring for the current k
// (usually from the OnStep hook); the Player never caches engine output.

package stepper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Player advances a reveal count from 0 to n, by hand or on a timer.
// All methods are safe for concurrent use.
type Player struct {
	mu      sync.Mutex
	n       int
	k       int
	speed   float64
	base    time.Duration
	playing bool
	stop    chan struct{}

	onStep func(k int)
	log    *zap.Logger
}

// NewPlayer returns a Player for n vertices positioned at k = 0.
//
// Errors:
//   - ErrOptionViolation for n < 0 or an invalid option.
func NewPlayer(n int, opts ...Option) (*Player, error) {
	if n < 0 {
		return nil, fmt.Errorf("stepper: n=%d < 0: %w", n, ErrOptionViolation)
	}
	o := defaultPlayerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.session == "" {
		o.session = uuid.NewString()
	}

	return &Player{
		n:      n,
		speed:  o.speed,
		base:   o.interval,
		onStep: o.onStep,
		log:    o.logger.Named("stepper").With(zap.String("session", o.session), zap.Int("n", n)),
	}, nil
}

// Len returns n.
func (p *Player) Len() int { return p.n }

// Current returns the reveal count.
func (p *Player) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.k
}

// Done reports whether every vertex is revealed.
func (p *Player) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.k >= p.n
}

// Playing reports whether Play is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Speed returns the speed multiplier.
func (p *Player) Speed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speed
}

// Interval returns the current delay between timed steps: base / speed.
func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.intervalLocked()
}

func (p *Player) intervalLocked() time.Duration {
	return time.Duration(float64(p.base) / p.speed)
}

// SetSpeed changes the multiplier; a running Play picks it up on its next
// tick.
//
// Errors:
//   - ErrOptionViolation if s is outside [MinSpeed, MaxSpeed].
func (p *Player) SetSpeed(s float64) error {
	if err := validateSpeed(s); err != nil {
		return err
	}
	p.mu.Lock()
	p.speed = s
	p.mu.Unlock()
	p.log.Debug("speed changed", zap.Float64("speed", s))
	return nil
}

// Step reveals one more vertex. It returns false, changing nothing, when
// all vertices are already revealed.
func (p *Player) Step() bool {
	p.mu.Lock()
	if p.k >= p.n {
		p.mu.Unlock()
		return false
	}
	p.k++
	k := p.k
	p.mu.Unlock()

	p.emit(k)
	return true
}

// Seek jumps to reveal count k.
//
// Errors:
//   - ErrOptionViolation if k is outside [0, n].
func (p *Player) Seek(k int) error {
	if k < 0 || k > p.n {
		return fmt.Errorf("stepper: seek %d not in [0, %d]: %w", k, p.n, ErrOptionViolation)
	}
	p.mu.Lock()
	p.k = k
	p.mu.Unlock()

	p.emit(k)
	return nil
}

// Reset stops playback and returns to k = 0.
func (p *Player) Reset() {
	p.Pause()
	p.mu.Lock()
	p.k = 0
	p.mu.Unlock()

	p.log.Debug("reset")
	p.emit(0)
}

// Pause stops a running Play. It is a no-op when not playing.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing && p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

// Play advances one step per Interval until every vertex is revealed, Pause
// is called, or ctx is done. It blocks and returns nil on completion or
// pause, ctx.Err() on cancellation. Playing from the end returns at once.
//
// Errors:
//   - ErrAlreadyPlaying if another Play is running.
func (p *Player) Play(ctx context.Context) error {
	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return ErrAlreadyPlaying
	}
	if p.k >= p.n {
		p.mu.Unlock()
		return nil
	}
	stop := make(chan struct{})
	p.playing, p.stop = true, stop
	wait := p.intervalLocked()
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.playing = false
		if p.stop == stop {
			p.stop = nil
		}
		p.mu.Unlock()
	}()

	p.log.Info("playback started", zap.Duration("interval", wait))
	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("playback cancelled", zap.Int("k", p.Current()), zap.Error(ctx.Err()))
			return ctx.Err()
		case <-stop:
			p.log.Info("playback paused", zap.Int("k", p.Current()))
			return nil
		case <-timer.C:
			k, ok := p.tick(stop)
			if !ok {
				return nil
			}
			p.emit(k)
			if k >= p.n {
				p.log.Info("playback finished")
				return nil
			}
			timer.Reset(p.Interval())
		}
	}
}

// tick advances k for the Play run owning stop. It refuses once that run
// was paused, so a Reset racing a pending tick cannot be overwritten.
func (p *Player) tick(stop chan struct{}) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != stop || p.k >= p.n {
		return p.k, false
	}
	p.k++
	return p.k, true
}

func (p *Player) emit(k int) {
	p.log.Debug("step", zap.Int("k", k))
	p.onStep(k)
}
