// Package metrics keeps per-run counters in a prometheus registry.
package metrics

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type RunMetrics struct {
	registry *prometheus.Registry

	RecordsRead       prometheus.Counter
	ShortRowsSkipped  *prometheus.CounterVec
	QualifyingRows    *prometheus.CounterVec
	AlignedPairs      prometheus.Gauge
	DroppedDuplicates prometheus.Gauge
	ValueMismatches   prometheus.Gauge
	Coefficient       *prometheus.GaugeVec
	PValue            *prometheus.GaugeVec
}

func New() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		RecordsRead: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sdgcorr_records_read_total",
				Help: "Well-formed records read from the indicator export.",
			},
		),
		ShortRowsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdgcorr_short_rows_skipped_total",
				Help: "Rows skipped because they did not have the expected number of fields.",
			},
			[]string{"scan"},
		),
		QualifyingRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdgcorr_qualifying_rows_total",
				Help: "Rows extracted per indicator series.",
			},
			[]string{"series"},
		),
		AlignedPairs: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sdgcorr_aligned_pairs",
				Help: "Number of countries present in both series.",
			},
		),
		DroppedDuplicates: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sdgcorr_dropped_duplicate_rows",
				Help: "Rows dropped because their country already occurred in the same series.",
			},
		),
		ValueMismatches: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sdgcorr_validation_mismatches",
				Help: "Source rows whose value disagrees with the aligned dataset.",
			},
		),
		Coefficient: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sdgcorr_correlation_coefficient",
				Help: "Correlation coefficient between the two series.",
			},
			[]string{"method"},
		),
		PValue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sdgcorr_correlation_p_value",
				Help: "Two-sided p-value of the correlation coefficient.",
			},
			[]string{"method"},
		),
	}
	m.registry.MustRegister(m.RecordsRead, m.ShortRowsSkipped, m.QualifyingRows, m.AlignedPairs,
		m.DroppedDuplicates, m.ValueMismatches, m.Coefficient, m.PValue)
	return m
}

func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile dumps the registry in the prometheus text format, e.g. for
// the node exporter textfile collector.
func (m *RunMetrics) WriteTextfile(path string) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(file, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}
	return file.Close()
}
