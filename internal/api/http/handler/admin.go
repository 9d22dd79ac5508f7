package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/simple-twitter-server/internal/api/http/response"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// AdminService defines back-office operations.
type AdminService interface {
	ListUsers(ctx context.Context) ([]model.UserStats, error)
	ListTweets(ctx context.Context) ([]model.TweetView, error)
	DeleteTweet(ctx context.Context, tweetID int64) error
}

// Admin handles the /admin endpoints. Callers are expected to sit behind the
// admin role gate.
type Admin struct {
	adminService AdminService
	logger       *logger.Logger
}

// NewAdmin creates a new Admin handler.
func NewAdmin(adminService AdminService, logger *logger.Logger) *Admin {
	return &Admin{
		adminService: adminService,
		logger:       logger,
	}
}

func (h *Admin) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newUserStatsDTOs(users))
}

func (h *Admin) ListTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.adminService.ListTweets(r.Context())
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newTweetDTOs(tweets))
}

func (h *Admin) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := pathID(r, "id", model.ErrTweetNotFound)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	if err := h.adminService.DeleteTweet(r.Context(), tweetID); err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, response.Envelope{Status: response.StatusSuccess})
}
