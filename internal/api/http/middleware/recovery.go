package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/dtroode/simple-twitter-server/internal/api/http/response"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// Recovery turns handler panics into 500 responses.
type Recovery struct {
	logger *logger.Logger
}

func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

func (m *Recovery) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				m.logger.Error("panic while serving request",
					"path", r.URL.Path,
					"panic", p,
					"stack", string(debug.Stack()))
				response.Error(w, http.StatusInternalServerError, model.MsgInternal)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
