// Package metrics exposes the Prometheus collectors of the tracking engine.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fieldtrack"

var (
	samplesIngested = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "location_samples_ingested_total",
		Help:      "Location samples persisted, split by the client-reported mock flag.",
	}, []string{"mock"})
	checkIns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visit_check_ins_total",
		Help:      "Accepted check-ins, split by integrity outcome.",
	}, []string{"valid"})
	visitTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visit_transitions_total",
		Help:      "Visits leaving in_progress, by target status.",
	}, []string{"status"})
	recomputeFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "metrics_recompute_failures_total",
		Help:      "Session metric recomputations that failed and will be retried.",
	})
	recomputeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "metrics_recompute_duration_seconds",
		Help:      "Time spent recomputing one session's metrics.",
		Buckets:   prometheus.DefBuckets,
	})
	discardedSegments = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_segments_discarded_total",
		Help:      "Consecutive sample pairs excluded from session distance as implausible.",
	})
	eventPublishFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_publish_failures_total",
		Help:      "Visit events that could not be handed to the broker.",
	}, []string{"type"})
	dbPoolWaits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "db_pool_waits_total",
		Help:      "Connection acquisitions that had to wait for a free Postgres connection.",
	})
	dbPoolWaitSeconds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "db_pool_wait_seconds_total",
		Help:      "Total time spent waiting for a Postgres connection.",
	})
	complianceCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "compliance_cache_lookups_total",
		Help:      "Compliance cache reads by result (hit, miss, error).",
	}, []string{"result"})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests by method, route template and status code.",
	}, []string{"method", "route", "status"})
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route template.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	pushMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "worker_push_messages_total",
		Help:      "Push deliveries handled by the metrics worker, by outcome (ok, retry, dropped).",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(
		samplesIngested,
		checkIns,
		visitTransitions,
		recomputeFailures,
		recomputeDuration,
		discardedSegments,
		eventPublishFailures,
		dbPoolWaits,
		dbPoolWaitSeconds,
		complianceCacheLookups,
		httpRequests,
		httpRequestDuration,
		pushMessages,
	)
}

// RecordSamplesIngested counts persisted samples.
func RecordSamplesIngested(mock bool, n int) {
	if n <= 0 {
		return
	}
	samplesIngested.WithLabelValues(strconv.FormatBool(mock)).Add(float64(n))
}

// RecordCheckIn counts an accepted check-in.
func RecordCheckIn(valid bool) {
	checkIns.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

// RecordVisitTransition counts a visit reaching a terminal status.
func RecordVisitTransition(status string) {
	visitTransitions.WithLabelValues(status).Inc()
}

// RecordRecompute observes one recomputation.
func RecordRecompute(seconds float64, discarded int, failed bool) {
	if failed {
		recomputeFailures.Inc()

		return
	}
	recomputeDuration.Observe(seconds)
	discardedSegments.Add(float64(discarded))
}

// RecordPublishFailure counts an event that was not published.
func RecordPublishFailure(eventType string) {
	eventPublishFailures.WithLabelValues(eventType).Inc()
}

// RecordDBPoolWait adds the pool wait deltas observed since the previous sample.
func RecordDBPoolWait(waits int64, seconds float64) {
	if waits <= 0 {
		return
	}
	dbPoolWaits.Add(float64(waits))
	dbPoolWaitSeconds.Add(seconds)
}

// RecordCacheLookup counts a compliance cache read.
func RecordCacheLookup(result string) {
	complianceCacheLookups.WithLabelValues(result).Inc()
}

// RecordHTTPRequest observes a handled request. route is the registered path template, not the raw URL.
func RecordHTTPRequest(method, route string, status int, seconds float64) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordPushMessage counts a push delivery outcome.
func RecordPushMessage(outcome string) {
	pushMessages.WithLabelValues(outcome).Inc()
}
