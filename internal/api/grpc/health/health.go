package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// Checker publishes the database reachability through the standard gRPC
// health service. The overall ("") service is reported.
type Checker struct {
	server   *health.Server
	pinger   model.Pinger
	interval time.Duration
	logger   *logger.Logger
}

// NewChecker creates a Checker that starts in NOT_SERVING until the first ping.
func NewChecker(pinger model.Pinger, interval time.Duration, logger *logger.Logger) *Checker {
	s := health.NewServer()
	s.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	return &Checker{
		server:   s,
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
}

// Server returns the health service implementation to register.
func (c *Checker) Server() healthpb.HealthServer {
	return c.server
}

// Run pings the database every interval until ctx is done, then marks the
// service as NOT_SERVING for good.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.check(ctx)
	for {
		select {
		case <-ctx.Done():
			c.Shutdown()
			return
		case <-ticker.C:
			c.check(ctx)
		}
	}
}

// Shutdown switches every service to NOT_SERVING and ignores later updates.
func (c *Checker) Shutdown() {
	c.server.Shutdown()
}

func (c *Checker) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := c.pinger.Ping(pingCtx); err != nil {
		c.logger.Warn("database ping failed", "error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", status)
}
