package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/simple-twitter-server/internal/api/http/response"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// handleError writes the envelope matching err. Unexpected errors are logged
// and reported without detail.
func handleError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error(w, http.StatusOK, verr.Message)
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, model.MsgInvalidCredentials)
	case errors.Is(err, model.ErrMissingToken), errors.Is(err, model.ErrInvalidToken):
		response.Error(w, http.StatusUnauthorized, model.MsgUnauthorized)
	case errors.Is(err, model.ErrPermissionDenied):
		response.Error(w, http.StatusForbidden, model.MsgPermissionDenied)
	case errors.Is(err, model.ErrUserNotFound):
		response.Error(w, http.StatusInternalServerError, model.MsgUserNotFound)
	case errors.Is(err, model.ErrTweetNotFound):
		response.Error(w, http.StatusInternalServerError, model.MsgTweetNotFound)
	default:
		log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
		response.Error(w, http.StatusInternalServerError, model.MsgInternal)
	}
}
