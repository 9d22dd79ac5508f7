package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// capturingLayer listens on a random local port and exposes the listener.
type capturingLayer struct {
	ready chan net.Listener
}

func newCapturingLayer() *capturingLayer {
	return &capturingLayer{ready: make(chan net.Listener, 1)}
}

func (c *capturingLayer) Listen(protocol, _ string) (net.Listener, error) {
	ln, err := net.Listen(protocol, "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	c.ready <- ln
	return ln, nil
}

func (c *capturingLayer) addr(t *testing.T) string {
	t.Helper()

	select {
	case ln := <-c.ready:
		return ln.Addr().String()
	case <-time.After(time.Second):
		t.Fatal("server did not start listening")
		return ""
	}
}

func TestHTTPServer_StartStop(t *testing.T) {
	s := NewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	}), ":3000", time.Second, time.Second)
	assert.Equal(t, ":3000", s.Address())

	layer := newCapturingLayer()
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(layer) }()

	resp, err := http.Get("http://" + layer.addr(t) + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.NoError(t, <-errCh)
}

func TestGRPCServer_StartStop(t *testing.T) {
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	s := NewGRPCServer(gs, ":50051")
	assert.Equal(t, ":50051", s.Address())

	layer := newCapturingLayer()
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(layer) }()

	conn, err := grpc.NewClient(layer.addr(t), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.NoError(t, <-errCh)
}

type failingLayer struct{}

func (failingLayer) Listen(string, string) (net.Listener, error) {
	return nil, assert.AnError
}

func TestServers_ListenError(t *testing.T) {
	err := NewHTTPServer(http.NotFoundHandler(), ":0", time.Second, time.Second).Start(failingLayer{})
	assert.ErrorIs(t, err, assert.AnError)

	err = NewGRPCServer(grpc.NewServer(), ":0").Start(failingLayer{})
	assert.ErrorIs(t, err, assert.AnError)
}
