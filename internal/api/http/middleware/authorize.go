package middleware

import (
	"net/http"

	"github.com/dtroode/simple-twitter-server/internal/api/http/response"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// Authorize gates routes by role. It must run after Authenticate.
type Authorize struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthorize creates a new Authorize middleware.
func NewAuthorize(contextManager model.ContextManager, logger *logger.Logger) *Authorize {
	return &Authorize{
		contextManager: contextManager,
		logger:         logger,
	}
}

// Require lets through only identities holding role.
func (m *Authorize) Require(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := m.contextManager.GetIdentityFromContext(r.Context())
			if !ok {
				response.Error(w, http.StatusUnauthorized, model.MsgUnauthorized)
				return
			}

			if err := model.RequireRole(identity, role); err != nil {
				m.logger.Info("permission denied",
					"user_id", identity.ID,
					"role", identity.Role,
					"required", role,
					"path", r.URL.Path)
				response.Error(w, http.StatusForbidden, model.MsgPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
