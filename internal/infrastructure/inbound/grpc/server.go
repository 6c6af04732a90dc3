package delivery_grpc

import (
	"fmt"
	"log/slog"
	"net"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	ports "pinstack-blog-service/internal/domain/ports/output"
)

// ServiceName is the name reported to health checks alongside the empty
// overall service.
const ServiceName = "blog.v1.PostService"

type Server struct {
	health  *health.Server
	server  *grpc.Server
	address string
	port    int
	log     ports.Logger
}

func NewServer(address string, port int, log ports.Logger, metrics ports.MetricsProvider) *Server {
	server := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			UnaryLoggerInterceptor(log, metrics),
			grpc_recovery.UnaryServerInterceptor(),
		)),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	return &Server{
		health:  healthServer,
		server:  server,
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	s.log.Info("Starting gRPC health server", slog.String("address", lis.Addr().String()))
	return s.server.Serve(lis)
}

// Shutdown flips every service to NOT_SERVING before draining connections.
func (s *Server) Shutdown() error {
	s.health.Shutdown()
	s.server.GracefulStop()
	return nil
}
