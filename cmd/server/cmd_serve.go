package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	post_service "pinstack-blog-service/internal/application/service/post"
	post_store "pinstack-blog-service/internal/application/store/post"
	"pinstack-blog-service/internal/infrastructure/config"
	delivery_grpc "pinstack-blog-service/internal/infrastructure/inbound/grpc"
	delivery_http "pinstack-blog-service/internal/infrastructure/inbound/http"
	post_http "pinstack-blog-service/internal/infrastructure/inbound/http/post"
	metrics_server "pinstack-blog-service/internal/infrastructure/inbound/metrics"
	"pinstack-blog-service/internal/infrastructure/logger"
	prometheus_metrics "pinstack-blog-service/internal/infrastructure/outbound/metrics/prometheus"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the blog web server",
	Long: `Runs the HTML server, the Prometheus metrics server and, when grpc_server.port
is set, the gRPC health server. SIGINT or SIGTERM shuts all of them down.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.MustLoad(rootFlags.configPath)
	log := logger.New(cfg.Env)
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	postStorage, closeStorage, err := newPostStorage(ctx, cfg, log, metrics)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer closeStorage()

	publisher, closePublisher, err := newEventPublisher(cfg.MQTT, log)
	if err != nil {
		return fmt.Errorf("init event publisher: %w", err)
	}
	defer closePublisher()

	store := post_store.NewStore(postStorage, log, metrics)
	postService := post_service.NewPostService(store, publisher, log, metrics)

	postHTTPAPI, err := post_http.NewPostHTTPService(postService, log)
	if err != nil {
		return fmt.Errorf("init http handlers: %w", err)
	}
	httpServer := delivery_http.NewServer(postHTTPAPI, cfg.HTTPServer, log, metrics)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	var grpcServer *delivery_grpc.Server
	if cfg.GRPCServer.Port > 0 {
		grpcServer = delivery_grpc.NewServer(cfg.GRPCServer.Address, cfg.GRPCServer.Port, log, metrics)
	}

	metrics.SetServiceHealth(true)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(httpServer.Run)
	g.Go(metricsServer.Run)
	if grpcServer != nil {
		g.Go(grpcServer.Run)
	}

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down servers...")
		metrics.SetServiceHealth(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if grpcServer != nil {
			if err := grpcServer.Shutdown(); err != nil {
				log.Error("gRPC server shutdown error", slog.String("error", err.Error()))
			}
		}
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server exited")
	return nil
}
