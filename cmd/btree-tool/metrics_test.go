package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/bluesky-social/btree/btree"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricValue(t *testing.T) {
	assert := assert.New(t)

	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_counter"})
	c.Add(3)
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	assert.Equal(3.0, metricValue(dto.MetricType_COUNTER, &m))

	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_gauge"})
	g.Set(-2)
	m = dto.Metric{}
	require.NoError(t, g.Write(&m))
	assert.Equal(-2.0, metricValue(dto.MetricType_GAUGE, &m))
}

func TestLogMetrics(t *testing.T) {
	assert := assert.New(t)

	// make sure the split counters have a "leaf" series
	_, err := btree.NewTreeFromKeys(3, []int64{1, 2, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	assert.NoError(logMetrics(logger))

	out := buf.String()
	assert.Contains(out, `"metric":"btree_inserts"`)
	assert.Contains(out, `"metric":"btree_node_splits"`)
	assert.Contains(out, `"kind":"leaf"`)
	assert.NotContains(out, `"metric":"go_`)
}
