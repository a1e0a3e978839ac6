// SPDX-License-Identifier: MIT

// Package graphio reads and writes graph documents in JSON and YAML.
//
// A document is a named vertex list (arrival order), an edge list and an
// optional palette:
//
//	name: triangle
//	vertices: [A, B, C]
//	edges:
//	  - {source: A, target: B}
//	  - source: {id: B}
//	    target: C
//	palette: ["#ef4444", "#3b82f6", "#10b981"]
//
// Endpoints may be bare ids or {id} records in either format. Errors carry
// context through github.com/pkg/errors and still match the package
// sentinels with errors.Is.
package graphio
