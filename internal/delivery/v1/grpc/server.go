package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/DRSN-tech/pokeshop/internal/cfg"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// StorefrontService is the name reported by the health service.
const StorefrontService = "pokeshop.Storefront"

type GRPCServer struct {
	server *grpc.Server
	health *health.Server
	cfg    *cfg.GRPCConfig
	logger logger.Logger
}

func NewGRPCServer(cfg *cfg.GRPCConfig, logger logger.Logger) *GRPCServer {
	return &GRPCServer{
		server: grpc.NewServer(),
		health: health.NewServer(),
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterServices exposes health checking and reflection. The storefront
// reports NOT_SERVING until MarkServing is called.
func (s *GRPCServer) RegisterServices() {
	s.health.SetServingStatus(StorefrontService, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s.server, s.health)
	reflection.Register(s.server)
}

func (s *GRPCServer) MarkServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(StorefrontService, healthpb.HealthCheckResponse_SERVING)
}

func (s *GRPCServer) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	lis, err := net.Listen(s.cfg.NetworkMode, addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return s.Serve(lis)
}

func (s *GRPCServer) Serve(lis net.Listener) error {
	return s.server.Serve(lis)
}

// Stop flips every service to NOT_SERVING, then drains connections.
// The server is stopped hard when ctx ends first.
func (s *GRPCServer) Stop(ctx context.Context) error {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infof("gRPC server stopped gracefully")
		return nil
	case <-ctx.Done():
		s.server.Stop()
		s.logger.Warnf("gRPC server forced to stop after timeout")
		return ctx.Err()
	}
}
