package main

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Logs the current value of every btree_* metric in the default prometheus registry
func logMetrics(logger *slog.Logger) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, fam := range families {
		if !strings.HasPrefix(fam.GetName(), "btree_") {
			continue
		}
		for _, m := range fam.GetMetric() {
			attrs := []any{"metric", fam.GetName(), "value", metricValue(fam.GetType(), m)}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			logger.Info("btree metric", attrs...)
		}
	}
	return nil
}

func metricValue(typ dto.MetricType, m *dto.Metric) float64 {
	switch typ {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue()
	default:
		return 0
	}
}
