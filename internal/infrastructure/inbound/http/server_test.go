package delivery_http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pinstack-blog-service/internal/custom_errors"
	model "pinstack-blog-service/internal/domain/models"
	"pinstack-blog-service/internal/infrastructure/config"
	delivery_http "pinstack-blog-service/internal/infrastructure/inbound/http"
	"pinstack-blog-service/internal/infrastructure/inbound/http/middleware"
	post_http "pinstack-blog-service/internal/infrastructure/inbound/http/post"
	"pinstack-blog-service/internal/infrastructure/logger"
	prometheus_metrics "pinstack-blog-service/internal/infrastructure/outbound/metrics/prometheus"
	mockpost "pinstack-blog-service/mocks/post"
)

func newTestServer(t *testing.T) (*delivery_http.Server, *mockpost.Service) {
	service := mockpost.NewService(t)
	log := logger.New("test")
	api, err := post_http.NewPostHTTPService(service, log)
	require.NoError(t, err)

	cfg := config.HTTPServer{Address: "127.0.0.1", Port: 5000, ReadTimeout: time.Second, WriteTimeout: time.Second}
	return delivery_http.NewServer(api, cfg, log, prometheus_metrics.NewPrometheusMetricsProvider()), service
}

func TestServer_Healthz(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestServer_RoutesPosts(t *testing.T) {
	server, service := newTestServer(t)
	service.On("GetPost", mock.Anything, int64(2)).Return(nil, custom_errors.ErrPostNotFound)
	service.On("ListPosts", mock.Anything).Return(model.PostCollection{{ID: 1, Title: "hello"}}, nil)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post/2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello")
}

func TestServer_ServeAndShutdown(t *testing.T) {
	server, _ := newTestServer(t)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve(lis) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}
