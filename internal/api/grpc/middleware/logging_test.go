package middleware

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/simple-twitter-server/internal/logger"
)

func chain(interceptors []grpc.UnaryServerInterceptor, handler grpc.UnaryHandler) grpc.UnaryHandler {
	for i := len(interceptors) - 1; i >= 0; i-- {
		next, ic := handler, interceptors[i]
		handler = func(ctx context.Context, req any) (any, error) {
			return ic(ctx, req, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, next)
		}
	}
	return handler
}

func TestInterceptorLogger(t *testing.T) {
	var buf bytes.Buffer
	l := InterceptorLogger(logger.NewWithWriter(0, &buf))

	l.Log(context.Background(), 0, "hello", "key", "value")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "key=value")
}

func TestUnaryInterceptors(t *testing.T) {
	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantCode codes.Code
		wantLog  string
	}{
		{
			name: "success",
			handler: func(ctx context.Context, req any) (any, error) {
				return "ok", nil
			},
			wantCode: codes.OK,
			wantLog:  "grpc.code=OK",
		},
		{
			name: "error status propagates",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.Unavailable, "down")
			},
			wantCode: codes.Unavailable,
			wantLog:  "grpc.code=Unavailable",
		},
		{
			name: "panic becomes internal",
			handler: func(ctx context.Context, req any) (any, error) {
				panic("boom")
			},
			wantCode: codes.Internal,
			wantLog:  "panic=boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := chain(UnaryInterceptors(logger.NewWithWriter(0, &buf)), tt.handler)

			_, err := h(context.Background(), nil)
			require.Equal(t, tt.wantCode, status.Code(err))
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}
