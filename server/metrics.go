// SPDX-License-Identifier: MIT
// Package: lvcolor/server
//
// metrics.go — Prometheus collectors for the API.

package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics is bound to one registry so that several Servers (and tests) never
// collide on the default one.
type metrics struct {
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	colorings *prometheus.CounterVec
	conflicts *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lvcolor",
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code.",
			},
			[]string{"route", "code"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "lvcolor",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		colorings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lvcolor",
				Name:      "colorings_total",
				Help:      "Engine runs by algorithm.",
			},
			[]string{"algorithm"},
		),
		conflicts: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "lvcolor",
				Name:      "coloring_conflicts",
				Help:      "Conflicting edges per engine run.",
				Buckets:   []float64{0, 1, 2, 4, 8, 16, 32},
			},
			[]string{"algorithm"},
		),
	}
	reg.MustRegister(m.requests, m.latency, m.colorings, m.conflicts)
	return m
}

func (m *metrics) observeRequest(route string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.latency.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *metrics) observeRun(algorithm string, conflicts int) {
	m.colorings.WithLabelValues(algorithm).Inc()
	m.conflicts.WithLabelValues(algorithm).Observe(float64(conflicts))
}
