package prometheus_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	prometheus_metrics "pinstack-blog-service/internal/infrastructure/outbound/metrics/prometheus"
)

func TestPrometheusMetricsProvider(t *testing.T) {
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	t.Run("StorageLoadFallbacks", func(t *testing.T) {
		before := testutil.ToFloat64(prometheus_metrics.StorageLoadFallbacksTotal.WithLabelValues("corrupt"))
		metrics.IncrementStorageLoadFallbacks("corrupt")
		after := testutil.ToFloat64(prometheus_metrics.StorageLoadFallbacksTotal.WithLabelValues("corrupt"))
		assert.Equal(t, before+1, after)
	})

	t.Run("PostOperations", func(t *testing.T) {
		before := testutil.ToFloat64(prometheus_metrics.PostOperationsTotal.WithLabelValues("create", "true"))
		metrics.IncrementPostOperations("create", true)
		after := testutil.ToFloat64(prometheus_metrics.PostOperationsTotal.WithLabelValues("create", "true"))
		assert.Equal(t, before+1, after)
	})

	t.Run("ServiceHealth", func(t *testing.T) {
		metrics.SetServiceHealth(true)
		assert.Equal(t, float64(1), testutil.ToFloat64(prometheus_metrics.ServiceHealth))
		metrics.SetServiceHealth(false)
		assert.Equal(t, float64(0), testutil.ToFloat64(prometheus_metrics.ServiceHealth))
	})

	t.Run("Durations", func(t *testing.T) {
		metrics.RecordHTTPRequestDuration("GET", "GET /", "200", 10*time.Millisecond)
		metrics.IncrementHTTPRequests("GET", "GET /", "200")
		assert.GreaterOrEqual(t, testutil.ToFloat64(prometheus_metrics.HTTPRequestsTotal.WithLabelValues("GET", "GET /", "200")), float64(1))
	})
}
