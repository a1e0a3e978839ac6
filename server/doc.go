// SPDX-License-Identifier: MIT

// Package server exposes the coloring engine over HTTP/JSON.
//
// Routes:
//
//	GET  /healthz               {"status":"ok"}
//	GET  /api/samples           reference graph descriptions
//	GET  /api/samples/{size}    one reference graph as a graphio.Document
//	GET  /api/algorithms        registry entries in comparison order
//	POST /api/color             one algorithm at one reveal count
//	POST /api/compare           every algorithm at one reveal count
//	POST /api/trace             one algorithm at every reveal count
//	GET  /metrics               Prometheus exposition
//
// POST bodies share GraphRequest and are capped at DefaultMaxVertices
// vertices (WithMaxVertices). Malformed or oversized bodies, unknown
// algorithms and invalid palettes answer 400 with {"error": "..."}. Each response carries an
// X-Request-ID header, taken from the request when present.
//
// The Server keeps no graph state between requests. Collectors live on a
// private registry unless WithRegistry supplies one.
package server
