// Package metrics exposes Prometheus collectors for the gateway, the feed and the refresh task.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Recorder groups every catalog collector. A nil *Recorder is valid and records nothing.
type Recorder struct {
	statementDuration *prometheus.HistogramVec
	rowsWritten       *prometheus.CounterVec
	feedRecords       *prometheus.CounterVec
	refreshRuns       *prometheus.CounterVec
	persistDuration   prometheus.Histogram
	productsServed    prometheus.Gauge
}

// NewRegistry returns a registry preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		statementDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_db_statement_duration_seconds",
				Help:    "Duration of statements sent through the connection gateway",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"dialect", "op", "outcome"},
		),
		rowsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_db_rows_written_total",
				Help: "Rows submitted by committed bulk inserts",
			},
			[]string{"table"},
		),
		feedRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_feed_records_total",
				Help: "Feed records by parse outcome",
			},
			[]string{"outcome"},
		),
		refreshRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_refresh_runs_total",
				Help: "Refresh runs by outcome",
			},
			[]string{"outcome"},
		),
		persistDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_persist_duration_seconds",
				Help:    "Duration of the bulk persistence pipeline",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
		),
		productsServed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_products",
				Help: "Products in the published snapshot",
			},
		),
	}

	reg.MustRegister(
		r.statementDuration,
		r.rowsWritten,
		r.feedRecords,
		r.refreshRuns,
		r.persistDuration,
		r.productsServed,
	)

	return r
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}

// ObserveStatement records one gateway statement.
func (r *Recorder) ObserveStatement(dialect, op string, start time.Time, err error) {
	if r == nil {
		return
	}
	r.statementDuration.WithLabelValues(dialect, op, outcome(err)).Observe(time.Since(start).Seconds())
}

// AddRowsWritten counts rows of a committed bulk insert.
func (r *Recorder) AddRowsWritten(table string, rows int) {
	if r == nil {
		return
	}
	r.rowsWritten.WithLabelValues(table).Add(float64(rows))
}

// AddFeedRecords counts parsed feed records.
func (r *Recorder) AddFeedRecords(accepted, rejected int) {
	if r == nil {
		return
	}
	r.feedRecords.WithLabelValues("accepted").Add(float64(accepted))
	r.feedRecords.WithLabelValues("rejected").Add(float64(rejected))
}

// ObserveRefresh counts a refresh run.
func (r *Recorder) ObserveRefresh(err error) {
	if r == nil {
		return
	}
	r.refreshRuns.WithLabelValues(outcome(err)).Inc()
}

// ObservePersist records the duration of one persistence pass.
func (r *Recorder) ObservePersist(start time.Time) {
	if r == nil {
		return
	}
	r.persistDuration.Observe(time.Since(start).Seconds())
}

// SetProducts publishes the snapshot size.
func (r *Recorder) SetProducts(n int) {
	if r == nil {
		return
	}
	r.productsServed.Set(float64(n))
}
