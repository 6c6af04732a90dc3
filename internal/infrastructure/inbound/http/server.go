package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	ports "pinstack-blog-service/internal/domain/ports/output"
	"pinstack-blog-service/internal/infrastructure/config"
	"pinstack-blog-service/internal/infrastructure/inbound/http/middleware"
	post_http "pinstack-blog-service/internal/infrastructure/inbound/http/post"
)

type Server struct {
	postHTTPService *post_http.PostHTTPService
	server          *http.Server
	address         string
	port            int
	log             ports.Logger
	metrics         ports.MetricsProvider
}

func NewServer(postHTTPService *post_http.PostHTTPService, cfg config.HTTPServer, log ports.Logger, metrics ports.MetricsProvider) *Server {
	s := &Server{
		postHTTPService: postHTTPService,
		address:         cfg.Address,
		port:            cfg.Port,
		log:             log,
		metrics:         metrics,
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	s.postHTTPService.Register(mux)

	return middleware.Chain(mux,
		middleware.Recovery(s.log),
		middleware.RequestID(),
		middleware.AccessLog(s.log),
		middleware.Metrics(s.metrics),
	)
}

func (s *Server) Run() error {
	lis, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve returns nil once Shutdown has been called.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("Starting HTTP server", slog.String("address", lis.Addr().String()))
	if err := s.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
