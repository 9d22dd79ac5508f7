package model

import (
	"context"
	"net"
)

// SecurityLayer opens listeners, optionally wrapped in TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long-running network server with graceful shutdown.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// Pinger checks that a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
