// Package metrics holds shared Prometheus instrumentation for the status
// service: common histogram buckets and the poller's collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Poll outcome label values for PollsTotal.
const (
	PollOutcomeSuccess     = "success"
	PollOutcomeFailure     = "failure"
	PollOutcomeRateLimited = "rate_limited"
)

//nolint: gochecknoglobals
var (
	// PollsTotal counts background polls of the upstream status page by outcome.
	PollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snowstat_polls_total",
		Help: "Number of status page polls by outcome.",
	}, []string{"outcome"})

	// SnapshotAge tracks the age of the latest stored snapshot in seconds.
	SnapshotAge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "snowstat_snapshot_age_seconds",
		Help: "Age of the most recent status snapshot in seconds.",
	})

	// PollDuration observes how long a full poll (fetch plus store) takes.
	PollDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "snowstat_poll_duration_seconds",
		Help:    "Duration of status page polls in seconds.",
		Buckets: DefaultBuckets,
	})
)
