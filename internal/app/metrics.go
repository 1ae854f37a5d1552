package app

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "lexirumah"

// Metrics holds the counters of one pipeline run on a private registry.
// They are never served; WriteTextfile exports them for a node-exporter
// textfile collector.
type Metrics struct {
	registry *prometheus.Registry

	// UnclassifiedSymbols counts symbols the segmenter appended to a segment
	// without classifying them. Labels: symbol.
	UnclassifiedSymbols *prometheus.CounterVec

	// ResolverNotices counts non-fatal resolution ambiguities. Labels: kind.
	ResolverNotices *prometheus.CounterVec

	// CrossMeaningPairs is the number of concept pairs joined by a class.
	CrossMeaningPairs prometheus.Gauge

	// ReplacedAlignmentGroups counts cognate classes whose alignments were
	// replaced by their fallback.
	ReplacedAlignmentGroups prometheus.Counter

	// StageRows is the number of rows a stage wrote. Labels: stage.
	StageRows *prometheus.GaugeVec

	// StageDuration is the wall time of a stage. Labels: stage.
	StageDuration *prometheus.GaugeVec
}

// NewMetrics registers all run metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		UnclassifiedSymbols: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "segmenter",
			Name:      "unclassified_symbols_total",
			Help:      "Symbols absorbed into a segment without a phonetic class",
		}, []string{"symbol"}),
		ResolverNotices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "resolver",
			Name:      "notices_total",
			Help:      "Forms whose cognate coding could not be grounded as requested",
		}, []string{"kind"}),
		CrossMeaningPairs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "resolver",
			Name:      "cross_meaning_pairs",
			Help:      "Concept pairs joined by one cognate class",
		}),
		ReplacedAlignmentGroups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "validator",
			Name:      "replaced_groups_total",
			Help:      "Cognate classes whose alignments disagreed in length",
		}),
		StageRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "pipeline",
			Name:      "stage_rows",
			Help:      "Rows written by a stage",
		}, []string{"stage"}),
		StageDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Wall time of a stage",
		}, []string{"stage"}),
	}
	m.registry.MustRegister(
		m.UnclassifiedSymbols,
		m.ResolverNotices,
		m.CrossMeaningPairs,
		m.ReplacedAlignmentGroups,
		m.StageRows,
		m.StageDuration,
	)
	return m
}

// ObserveStage records the outcome of a finished stage.
func (m *Metrics) ObserveStage(stage string, rows int, d time.Duration) {
	m.StageRows.WithLabelValues(stage).Set(float64(rows))
	m.StageDuration.WithLabelValues(stage).Set(d.Seconds())
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
