package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

// HTTPServer serves the REST API.
type HTTPServer struct {
	server *http.Server
}

var _ model.Server = (*HTTPServer)(nil)

// NewHTTPServer creates an HTTPServer for handler on addr.
func NewHTTPServer(handler http.Handler, addr string, readTimeout, writeTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readTimeout,
			WriteTimeout:      writeTimeout,
		},
	}
}

// Start blocks serving requests until Stop is called. A graceful stop is not
// reported as an error.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	err = s.server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop waits for in-flight requests until ctx expires.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) Address() string {
	return s.server.Addr
}
