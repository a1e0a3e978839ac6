// SPDX-License-Identifier: MIT
// Package: lvcolor/server
//
// handlers.go — JSON endpoints over the coloring engine.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/graphio"
	"github.com/katalvlaran/lvcolor/palette"
	"github.com/katalvlaran/lvcolor/stepper"
)

// GraphRequest is the body shared by the POST endpoints. A nil RevealCount
// reveals every vertex.
type GraphRequest struct {
	Vertices    []string        `json:"vertices"`
	Edges       []coloring.Edge `json:"edges"`
	Algorithm   string          `json:"algorithm,omitempty"`
	RevealCount *int            `json:"revealCount,omitempty"`
	Palette     []string        `json:"palette,omitempty"`
}

// ColorResponse answers POST /api/color.
type ColorResponse struct {
	Algorithm   string            `json:"algorithm"`
	RevealCount int               `json:"revealCount"`
	Current     string            `json:"current,omitempty"`
	Coloring    coloring.Coloring `json:"coloring"`
	TotalColors int               `json:"totalColors"`
	Conflicts   int               `json:"conflicts"`
	Uncolored   []string          `json:"uncolored,omitempty"`
	Order       []string          `json:"order"`
}

// CompareResponse answers POST /api/compare.
type CompareResponse struct {
	RevealCount int              `json:"revealCount"`
	Entries     []coloring.Entry `json:"entries"`
	Best        []string         `json:"best"`
}

// TraceResponse answers POST /api/trace.
type TraceResponse struct {
	Algorithm    string         `json:"algorithm"`
	Steps        []stepper.Step `json:"steps"`
	RecolorCount int            `json:"recolorCount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSamples(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, builder.Samples())
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	size, err := strconv.Atoi(r.PathValue("size"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("sample size %q: not an integer", r.PathValue("size")))
		return
	}
	doc, err := graphio.FromSample(size)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, builder.ErrUnknownSample) {
			code = http.StatusNotFound
		}
		s.writeError(w, r, code, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, coloring.Algorithms())
}

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	req, opts, ok := s.decodeGraph(w, r)
	if !ok {
		return
	}
	algo, err := coloring.Lookup(req.Algorithm)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	k := req.revealCount()
	res, st := coloring.Run(algo.Fn, req.Vertices, req.Edges, k, opts...)
	s.metrics.observeRun(algo.Name, st.Conflicts)

	s.writeJSON(w, http.StatusOK, ColorResponse{
		Algorithm:   algo.Name,
		RevealCount: k,
		Current:     current(req.Vertices, k),
		Coloring:    res.Coloring,
		TotalColors: res.TotalColors,
		Conflicts:   st.Conflicts,
		Uncolored:   res.Uncolored,
		Order:       res.Order,
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	req, opts, ok := s.decodeGraph(w, r)
	if !ok {
		return
	}

	k := req.revealCount()
	cmp := coloring.Compare(req.Vertices, req.Edges, k, opts...)
	best := make([]string, 0, len(cmp.Entries))
	for _, e := range cmp.Best() {
		best = append(best, e.Algorithm)
	}
	for _, e := range cmp.Entries {
		s.metrics.observeRun(e.Algorithm, e.Conflicts)
	}

	s.writeJSON(w, http.StatusOK, CompareResponse{RevealCount: k, Entries: cmp.Entries, Best: best})
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	req, opts, ok := s.decodeGraph(w, r)
	if !ok {
		return
	}
	algo, err := coloring.Lookup(req.Algorithm)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	steps := stepper.Trace(algo.Fn, req.Vertices, req.Edges, opts...)
	for _, st := range steps {
		s.metrics.observeRun(algo.Name, st.Stats.Conflicts)
	}
	s.writeJSON(w, http.StatusOK, TraceResponse{
		Algorithm:    algo.Name,
		Steps:        steps,
		RecolorCount: stepper.RecolorCount(steps),
	})
}

// decodeGraph reads a GraphRequest, enforces the vertex cap and resolves the
// palette. On failure it has already answered 400.
func (s *Server) decodeGraph(w http.ResponseWriter, r *http.Request) (GraphRequest, []coloring.Option, bool) {
	var req GraphRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return req, nil, false
	}
	if len(req.Vertices) > s.maxVertices {
		s.writeError(w, r, http.StatusBadRequest,
			fmt.Errorf("%d vertices exceed the limit of %d", len(req.Vertices), s.maxVertices))
		return req, nil, false
	}

	var opts []coloring.Option
	if len(req.Palette) > 0 {
		p, err := palette.New(req.Palette...)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return req, nil, false
		}
		opts = append(opts, coloring.WithPalette(p))
	}
	return req, opts, true
}

// revealCount clamps the requested count to [0, len(Vertices)].
func (req GraphRequest) revealCount() int {
	n := len(req.Vertices)
	if req.RevealCount == nil || *req.RevealCount > n {
		return n
	}
	return max(*req.RevealCount, 0)
}

func current(vertices []string, k int) string {
	if k <= 0 {
		return ""
	}
	return vertices[k-1]
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	s.log.Info("request rejected",
		zap.String("request_id", RequestID(r.Context())),
		zap.Int("code", code),
		zap.Error(err),
	)
	s.writeJSON(w, code, errorResponse{Error: err.Error()})
}
