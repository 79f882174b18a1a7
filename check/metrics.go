// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package check

import (
	"github.com/kopexa-grc/rebac/wellknown"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records outcome counts and resolution depth for the evaluator.
// It is optional: a nil *Metrics disables all recording.
type Metrics struct {
	outcomes     *prometheus.CounterVec
	resolveDepth prometheus.Histogram
}

// NewMetrics constructs a Metrics recorder and registers it on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	namespace := wellknown.PrometheusNamespaceKopexa
	subsystem := "rebac_check"

	m := &Metrics{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "outcomes_total",
			Help:      "Count of check() outcomes by result.",
		}, []string{"result"}),
		resolveDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "resolve_depth",
			Help:      "Recursion depth reached while resolving a single check.",
			Buckets:   prometheus.LinearBuckets(0, 1, DefaultMaxDepth+1),
		}),
	}

	reg.MustRegister(m.outcomes, m.resolveDepth)

	return m
}

func (m *Metrics) recordOutcome(allowed bool) {
	if m == nil {
		return
	}

	if allowed {
		m.outcomes.WithLabelValues("allow").Inc()
	} else {
		m.outcomes.WithLabelValues("deny").Inc()
	}
}

func (m *Metrics) recordDepth(depth int) {
	if m == nil {
		return
	}

	m.resolveDepth.Observe(float64(depth))
}

// Tracer lets a caller attach spans or structured logging around each
// recursive resolution step. A nil Tracer disables all hooks.
type Tracer interface {
	// OnResolve is called once per recursive call with the node being
	// resolved and the depth at which it is evaluated.
	OnResolve(objectType, objectID, relation, subjectType, subjectID string, depth int)
}
