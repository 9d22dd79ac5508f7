package router

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/simple-twitter-server/internal/api/grpc/middleware"
	"github.com/dtroode/simple-twitter-server/internal/logger"
)

// Router builds the operations gRPC server.
type Router struct {
	health healthpb.HealthServer
	logger *logger.Logger
}

// New creates a new gRPC Router instance.
func New(health healthpb.HealthServer, logger *logger.Logger) *Router {
	return &Router{
		health: health,
		logger: logger,
	}
}

// Register returns a gRPC server with the health service and reflection
// registered behind the logging and recovery interceptors.
func (r *Router) Register() *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(middleware.UnaryInterceptors(r.logger)...),
		grpc.ChainStreamInterceptor(middleware.StreamInterceptors(r.logger)...),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}
