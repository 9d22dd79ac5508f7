package middleware

import (
	"net/http"
	"time"

	reqctx "github.com/dtroode/simple-twitter-server/internal/api/http/context"
	"github.com/dtroode/simple-twitter-server/internal/logger"
)

// Logging logs every HTTP request with its outcome.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration of each request.
func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		args := []any{
			"request_id", reqctx.RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"size", rec.size,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if rec.status >= http.StatusInternalServerError {
			l.logger.Error("HTTP request failed", args...)
			return
		}
		l.logger.Info("HTTP request completed", args...)
	})
}
