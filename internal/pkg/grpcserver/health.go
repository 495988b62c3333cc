package grpcserver

import (
	"errors"
	"fmt"
	"net"
	"time"

	"orders/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// ServiceName is the name probes pass in HealthCheckRequest.Service. The empty
// name reports the same status.
const ServiceName = "orders"

const (
	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second
)

// HealthServer serves grpc.health.v1.Health next to the HTTP API.
type HealthServer struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func NewHealthServer(log logger.Logger) *HealthServer {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
	)
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(server, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &HealthServer{
		log:    log.With(logger.NewField("component", "grpc-health")),
		server: server,
		health: healthSrv,
	}
}

// ListenAndServe blocks until Stop is called.
func (s *HealthServer) ListenAndServe(port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", port, err)
	}
	return s.Serve(lis)
}

func (s *HealthServer) Serve(lis net.Listener) error {
	s.log.Info("grpc health server started", logger.NewField("addr", lis.Addr().String()))
	if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health server: %w", err)
	}
	return nil
}

// Drain reports NOT_SERVING so load balancers stop routing while in-flight
// HTTP requests finish.
func (s *HealthServer) Drain() {
	s.health.Shutdown()
	s.log.Info("grpc health set to not serving")
}

func (s *HealthServer) Stop() {
	s.server.GracefulStop()
	s.log.Info("grpc health server stopped")
}
