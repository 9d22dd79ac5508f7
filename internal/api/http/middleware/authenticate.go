package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/simple-twitter-server/internal/api/http/response"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// Authenticator verifies access tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate rejects requests without a valid bearer token and stores the
// verified identity on the request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		authenticator:  authenticator,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle wraps next with token verification.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			m.logger.Debug("no bearer token",
				"path", r.URL.Path)
			response.Error(w, http.StatusUnauthorized, model.MsgUnauthorized)
			return
		}

		identity, err := m.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			m.logger.Debug("token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			response.Error(w, http.StatusUnauthorized, model.MsgUnauthorized)
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
