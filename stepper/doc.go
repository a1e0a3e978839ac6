// SPDX-License-Identifier: MIT

// Package stepper replays the coloring engine over a reveal sequence.
//
// Trace and CompareTrace call the engine once per reveal count
// k = 0..len(vertices) and record each result. Every call is a full
// recomputation, so a trace shows exactly what a viewer stepping through
// the sequence would see, including vertices whose color changes after
// they arrived (Step.Recolored).
//
// Player is the interactive counterpart: it holds k and moves it with
// Step, Seek, Reset or a timed Play(ctx) that advances once per
// DefaultInterval/speed, with speed in [0.5, 3]. Play stops at the end of
// the sequence, on Pause or when ctx is done. An OnStep hook receives each
// new k; the Player logs through zap with a per-session uuid.
package stepper
