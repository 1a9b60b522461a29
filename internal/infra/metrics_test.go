package infra

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsObserveVendorCall(t *testing.T) {
	m := NewMetrics()
	m.ObserveVendorCall("/product/packshot", "success", 40*time.Millisecond)
	m.ObserveVendorCall("/product/packshot", "success", 60*time.Millisecond)
	m.ObserveVendorCall("/product/packshot", "error", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.vendorCalls.WithLabelValues("/product/packshot", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.vendorCalls.WithLabelValues("/product/packshot", "error")))

	count, err := testutil.GatherAndCount(m.Registry(), "bria_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetricsNilReceiverIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveVendorCall("/x", "success", time.Second)
		m.ObserveHTTPRequest("/x", "GET", 200, time.Second)
	})
}
