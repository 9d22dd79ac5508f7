package context

import (
	"context"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

type key int

const (
	identityKey key = iota
	requestIDKey
)

// Manager stores the authenticated identity on request contexts.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new request context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a copy of ctx carrying identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext returns the identity stored by SetIdentityToContext.
// The boolean is false for unauthenticated requests.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	if !ok || identity.ID == 0 {
		return model.Identity{}, false
	}
	return identity, true
}

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request ID stored on ctx, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
