package metrics_server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metrics_server "pinstack-blog-service/internal/infrastructure/inbound/metrics"
	"pinstack-blog-service/internal/infrastructure/logger"
	prometheus_metrics "pinstack-blog-service/internal/infrastructure/outbound/metrics/prometheus"
)

func TestMetricsServer_ExposesRegisteredMetrics(t *testing.T) {
	prometheus_metrics.NewPrometheusMetricsProvider().SetServiceHealth(true)

	server := metrics_server.NewMetricsServer("127.0.0.1", 0, logger.New("test"))
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve(lis) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "service_health 1")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}
