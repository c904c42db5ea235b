// Package observability holds the prometheus instrumentation for the
// tracker.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	submissionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "grindtrack",
		Subsystem: "tracker",
		Name:      "submissions_total",
		Help:      "Daily submissions accepted and merged into the roster.",
	})
	saveFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "grindtrack",
		Subsystem: "store",
		Name:      "save_failures_total",
		Help:      "Roster save attempts that returned an error.",
	})
	lastSaveGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "grindtrack",
		Subsystem: "store",
		Name:      "last_save_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful roster save.",
	})
	rosterSizeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "grindtrack",
		Subsystem: "tracker",
		Name:      "roster_size",
		Help:      "Number of people in the roster at the last save.",
	})
)

func init() {
	prometheus.MustRegister(submissionsTotal, saveFailuresTotal, lastSaveGauge, rosterSizeGauge)
}

// RecordSubmission counts one accepted daily submission.
func RecordSubmission() {
	submissionsTotal.Inc()
}

// RecordSaveFailure counts one failed roster save.
func RecordSaveFailure() {
	saveFailuresTotal.Inc()
}

// RecordRosterSaved updates the save watermark and roster size gauges.
func RecordRosterSaved(size int, ts time.Time) {
	lastSaveGauge.Set(float64(ts.Unix()))
	rosterSizeGauge.Set(float64(size))
}
