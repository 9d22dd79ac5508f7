package server

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

// GRPCServer serves the operations gRPC API.
type GRPCServer struct {
	server *grpc.Server
	addr   string
}

var _ model.Server = (*GRPCServer)(nil)

func NewGRPCServer(server *grpc.Server, addr string) *GRPCServer {
	return &GRPCServer{server: server, addr: addr}
}

func (s *GRPCServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.server.Serve(listener)
}

// Stop drains in-flight calls, falling back to a hard stop when ctx expires.
func (s *GRPCServer) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.server.Stop()
		return ctx.Err()
	}
}

func (s *GRPCServer) Address() string {
	return s.addr
}
