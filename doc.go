// Package lvcolor is an online graph coloring engine: vertices arrive one
// at a time, and after each arrival the revealed sub-graph is colored from
// an ordered palette and scored.
//
// 🚀 What is lvcolor?
//
//	A small, deterministic engine plus the tooling around it:
//		• Four strategies: FirstFit, CBIP (online), Greedy, Welsh-Powell (offline)
//		• Evaluation: distinct colors used and monochromatic (conflicting) edges
//		• Comparison: every strategy on the same reveal count, side by side
//		• Replay: per-step traces and a timed player with speed control
//		• Surfaces: JSON/YAML graph documents, an HTTP API, a CLI
//
// ✨ Guarantees
//
//   - Same input ⇒ same coloring; every call is a full recomputation.
//   - Inputs are never mutated; no call shares state with another.
//   - Malformed edges, self-loops and duplicates are ignored, never fatal.
//
// Layout:
//
//	coloring/ — algorithms, evaluator, registry and comparison
//	palette/  — ordered color tokens, hex validation, generated palettes
//	core/     — the insertion-ordered undirected graph the engine reveals into
//	bfs/      — breadth-first traversal and 2-coloring partition (used by CBIP)
//	builder/  — reference sample graphs and classic topologies
//	stepper/  — reveal-sequence traces and the timed Player
//	graphio/  — graph documents in JSON and YAML
//	server/   — HTTP/JSON API with Prometheus metrics
//	cmd/lvcolor — command-line front end
//
// Quick ASCII example (path A–B–C revealed in order A, B, C):
//
//	A───B───C      FirstFit ⇒ A:#ef4444  B:#3b82f6  C:#ef4444
//
//	go install github.com/katalvlaran/lvcolor/cmd/lvcolor@latest
package lvcolor
