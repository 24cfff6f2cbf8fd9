package metrics_test

import (
	"errors"
	"testing"
	"time"

	"revo-utils/core/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordExport(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.RecordExport("invoices", 10, 50*time.Millisecond, nil)
	m.RecordExport("invoices", 0, time.Millisecond, errors.New("boom"))

	count, err := testutil.GatherAndCount(reg, "revo_exports_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// rows and duration carry one series per table
	count, err = testutil.GatherAndCount(reg, "revo_export_rows_total", "revo_export_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRecordAssetLookup(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.RecordAssetLookup("DEFAULT", nil)
	m.RecordAssetLookup("DEFAULT", nil)
	m.RecordStatsReload("DEFAULT")

	count, err := testutil.GatherAndCount(reg, "revo_asset_lookups_total", "revo_asset_stats_reloads_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RecordExport("x", 1, time.Second, nil)
		m.RecordAssetLookup("x", nil)
		m.RecordStatsReload("x")
	})
}
