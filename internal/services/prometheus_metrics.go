package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	cacheEvents         *prometheus.CounterVec
	aggregationDuration prometheus.Histogram
	accountRows         prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		cacheEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_sheet_cache_events_total",
				Help: "Total number of balance sheet cache lookups by result",
			},
			[]string{"result"},
		),
		aggregationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "balance_sheet_aggregation_duration_milliseconds",
				Help:    "Balance sheet aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		accountRows: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "balance_sheet_account_rows",
				Help: "Number of account rows produced by the last aggregation",
			},
		),
	}
}

// RecordCacheEvent counts a cache lookup outcome (hit, miss, error, write_error)
func (m *PrometheusMetrics) RecordCacheEvent(result string) {
	m.cacheEvents.WithLabelValues(result).Inc()
}

// RecordAggregationDuration records how long one fresh computation took
func (m *PrometheusMetrics) RecordAggregationDuration(durationMs float64) {
	m.aggregationDuration.Observe(durationMs)
}

// RecordAccountRows records the row count of the last computation
func (m *PrometheusMetrics) RecordAccountRows(count int) {
	m.accountRows.Set(float64(count))
}
