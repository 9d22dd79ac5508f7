package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/simple-twitter-server/internal/api/http/response"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// AuthService defines sign-in and registration operations.
type AuthService interface {
	SignIn(ctx context.Context, account, password string, role model.Role) (model.SessionResult, error)
	SignUp(ctx context.Context, params model.SignUpParams) (model.Identity, error)
}

// Auth handles the public sign-in and sign-up endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type signInRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Account       string `json:"account"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	CheckPassword string `json:"checkPassword"`
}

// SignIn returns a handler that signs in accounts holding role.
func (h *Auth) SignIn(role model.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signInRequest
		err := decodeBody(w, r, &req, map[string]*string{
			"account":  &req.Account,
			"password": &req.Password,
		})
		if err != nil {
			handleError(w, r, err, h.logger)
			return
		}

		session, err := h.authService.SignIn(r.Context(), req.Account, req.Password, role)
		if err != nil {
			handleError(w, r, err, h.logger)
			return
		}

		response.JSON(w, http.StatusOK, response.Envelope{
			Status: response.StatusSuccess,
			Data:   sessionDTO{Token: session.Token, User: session.User},
		})
	}
}

// SignUp registers an ordinary user.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	err := decodeBody(w, r, &req, map[string]*string{
		"account":       &req.Account,
		"name":          &req.Name,
		"email":         &req.Email,
		"password":      &req.Password,
		"checkPassword": &req.CheckPassword,
	})
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	user, err := h.authService.SignUp(r.Context(), model.SignUpParams{
		Account:       req.Account,
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		CheckPassword: req.CheckPassword,
	})
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, response.Envelope{
		Status:  response.StatusSuccess,
		Message: model.MsgSignUpSuccess,
		User:    user,
	})
}
