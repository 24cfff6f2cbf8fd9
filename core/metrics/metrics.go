// Package metrics holds the Prometheus collectors for exports and asset lookups.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus metrics for the application features.
type Metrics struct {
	exports        *prometheus.CounterVec
	exportRows     *prometheus.CounterVec
	exportDuration *prometheus.HistogramVec
	assetLookups   *prometheus.CounterVec
	statsReloads   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors, which is what tests want.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		exports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revo_exports_total",
				Help: "Total number of spreadsheet exports by outcome",
			},
			[]string{"table", "result"},
		),
		exportRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revo_export_rows_total",
				Help: "Total number of data rows written to spreadsheets",
			},
			[]string{"table"},
		),
		exportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "revo_export_duration_seconds",
				Help:    "Duration of spreadsheet exports in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
			},
			[]string{"table"},
		),
		assetLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revo_asset_lookups_total",
				Help: "Total number of bundle lookups by outcome",
			},
			[]string{"app", "result"},
		),
		statsReloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revo_asset_stats_reloads_total",
				Help: "Total number of bundle stats file loads",
			},
			[]string{"app"},
		),
	}
}

// RecordExport records one finished (or failed) export.
func (m *Metrics) RecordExport(table string, rows int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.exports.WithLabelValues(table, result).Inc()
	m.exportRows.WithLabelValues(table).Add(float64(rows))
	m.exportDuration.WithLabelValues(table).Observe(elapsed.Seconds())
}

// RecordAssetLookup records a bundle lookup.
func (m *Metrics) RecordAssetLookup(app string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.assetLookups.WithLabelValues(app, result).Inc()
}

// RecordStatsReload records a stats file (re)load.
func (m *Metrics) RecordStatsReload(app string) {
	if m == nil {
		return
	}
	m.statsReloads.WithLabelValues(app).Inc()
}
