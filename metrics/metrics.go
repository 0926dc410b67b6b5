// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package metrics exposes retry engine activity as Prometheus metrics.
//
// A Collector is an event handler; install one on a Client to count
// attempts, retries by failure reason, terminal outcomes, and sequence
// durations:
//
//	col := metrics.NewCollector(prometheus.DefaultRegisterer)
//	handlers := &reissue.HandlerGroup{}
//	col.Install(handlers)
//	client := &reissue.Client{Handlers: handlers}
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reissue/reissue"
	"github.com/reissue/reissue/request"
)

// A Collector records retry engine activity on a Prometheus registry.
// It implements reissue.Handler and is safe for concurrent use.
type Collector struct {
	attempts  *prometheus.CounterVec
	retries   *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
// Registering two Collectors on the same registry panics, per the
// usual promauto contract.
func NewCollector(reg prometheus.Registerer) *Collector {
	return &Collector{
		attempts: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "reissue_attempts_total",
				Help: "Total number of request attempts issued",
			},
			[]string{"method"},
		),
		retries: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "reissue_retries_total",
				Help: "Total number of retry attempts, by failure reason",
			},
			[]string{"method", "reason"},
		),
		failures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "reissue_failures_total",
				Help: "Total number of sequences that ended in a terminal error",
			},
			[]string{"method", "reason"},
		),
		durations: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reissue_sequence_duration_seconds",
				Help:    "End-to-end duration of retry sequences",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// Install pushes the collector onto the handler chains it observes.
func (c *Collector) Install(g *reissue.HandlerGroup) {
	g.PushBack(reissue.BeforeAttempt, c)
	g.PushBack(reissue.AfterExecutionEnd, c)
}

// Handle implements reissue.Handler.
func (c *Collector) Handle(evt reissue.Event, e *request.Execution) {
	method := e.Plan.Method
	switch evt {
	case reissue.BeforeAttempt:
		c.attempts.WithLabelValues(method).Inc()
		if e.Attempt > 0 {
			c.retries.WithLabelValues(method, e.Reason.String()).Inc()
		}
	case reissue.AfterExecutionEnd:
		c.durations.WithLabelValues(method).Observe(e.Duration().Seconds())
		if e.Err != nil {
			c.failures.WithLabelValues(method, e.Reason.String()).Inc()
		}
	}
}
