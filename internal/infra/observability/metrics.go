// Package observability exposes Prometheus collectors for the EcoTrack service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ReportImpact  = "impact"
	ReportSummary = "summary"
)

var (
	reportsComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecotrack",
		Subsystem: "reports",
		Name:      "computed_total",
		Help:      "Number of reports computed from activity records.",
	}, []string{"report"})

	reportCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecotrack",
		Subsystem: "reports",
		Name:      "cache_lookups_total",
		Help:      "Report cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	reportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ecotrack",
		Subsystem: "reports",
		Name:      "compute_duration_seconds",
		Help:      "Time spent fetching records and aggregating a report.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"report"})

	footprintsWritten = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecotrack",
		Subsystem: "footprints",
		Name:      "writes_total",
		Help:      "Footprint writes by operation.",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(reportsComputed, reportCacheLookups, reportDuration, footprintsWritten)
}

// RecordReportComputed counts a freshly computed report and its latency.
func RecordReportComputed(report string, elapsed time.Duration) {
	reportsComputed.WithLabelValues(report).Inc()
	reportDuration.WithLabelValues(report).Observe(elapsed.Seconds())
}

func RecordCacheHit()   { reportCacheLookups.WithLabelValues("hit").Inc() }
func RecordCacheMiss()  { reportCacheLookups.WithLabelValues("miss").Inc() }
func RecordCacheError() { reportCacheLookups.WithLabelValues("error").Inc() }

// RecordFootprintWrite counts a create, update or delete of a footprint.
func RecordFootprintWrite(op string) {
	footprintsWritten.WithLabelValues(op).Inc()
}
