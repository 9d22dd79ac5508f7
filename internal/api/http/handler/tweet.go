package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/simple-twitter-server/internal/api/http/response"
	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// TweetService defines timeline, like and reply operations.
type TweetService interface {
	List(ctx context.Context, viewerID int64) ([]model.TweetView, error)
	Get(ctx context.Context, tweetID, viewerID int64) (model.TweetView, error)
	Post(ctx context.Context, userID int64, description string) (model.Tweet, error)
	Like(ctx context.Context, userID, tweetID int64) (model.Like, error)
	Unlike(ctx context.Context, userID, tweetID int64) error
	Replies(ctx context.Context, tweetID, viewerID int64) ([]model.ReplyView, error)
	Reply(ctx context.Context, userID, tweetID int64, comment string) (model.Reply, error)
}

// Tweet handles the authenticated /tweets endpoints.
type Tweet struct {
	tweetService   TweetService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTweet creates a new Tweet handler.
func NewTweet(tweetService TweetService, contextManager model.ContextManager, logger *logger.Logger) *Tweet {
	return &Tweet{
		tweetService:   tweetService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Tweet) viewer(r *http.Request) (model.Identity, error) {
	viewer, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		return model.Identity{}, model.ErrMissingToken
	}
	return viewer, nil
}

// target resolves the viewer and the {id} tweet of a request.
func (h *Tweet) target(r *http.Request) (model.Identity, int64, error) {
	viewer, err := h.viewer(r)
	if err != nil {
		return model.Identity{}, 0, err
	}
	tweetID, err := pathID(r, "id", model.ErrTweetNotFound)
	if err != nil {
		return model.Identity{}, 0, err
	}
	return viewer, tweetID, nil
}

func (h *Tweet) List(w http.ResponseWriter, r *http.Request) {
	viewer, err := h.viewer(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	tweets, err := h.tweetService.List(r.Context(), viewer.ID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newTweetDTOs(tweets))
}

func (h *Tweet) Get(w http.ResponseWriter, r *http.Request) {
	viewer, tweetID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	tweet, err := h.tweetService.Get(r.Context(), tweetID, viewer.ID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newTweetDTO(tweet))
}

type postTweetRequest struct {
	Description string `json:"description"`
}

func (h *Tweet) Post(w http.ResponseWriter, r *http.Request) {
	viewer, err := h.viewer(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	var req postTweetRequest
	if err := decodeBody(w, r, &req, map[string]*string{"description": &req.Description}); err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	tweet, err := h.tweetService.Post(r.Context(), viewer.ID, req.Description)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, response.Envelope{
		Status: response.StatusSuccess,
		Data: tweetDTO{
			ID:          tweet.ID,
			UserID:      tweet.UserID,
			Description: tweet.Description,
			CreatedAt:   tweet.CreatedAt,
			UpdatedAt:   tweet.UpdatedAt,
			User:        authorDTO{ID: viewer.ID, Account: viewer.Account, Name: viewer.Name, Avatar: viewer.Avatar},
		},
	})
}

func (h *Tweet) Like(w http.ResponseWriter, r *http.Request) {
	viewer, tweetID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	like, err := h.tweetService.Like(r.Context(), viewer.ID, tweetID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, response.Envelope{
		Status: response.StatusSuccess,
		Data:   newLikeDTO(like),
	})
}

func (h *Tweet) Unlike(w http.ResponseWriter, r *http.Request) {
	viewer, tweetID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	if err := h.tweetService.Unlike(r.Context(), viewer.ID, tweetID); err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, response.Envelope{Status: response.StatusSuccess})
}

func (h *Tweet) Replies(w http.ResponseWriter, r *http.Request) {
	viewer, tweetID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	replies, err := h.tweetService.Replies(r.Context(), tweetID, viewer.ID)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, newReplyDTOs(replies))
}

type replyRequest struct {
	Comment string `json:"comment"`
}

func (h *Tweet) Reply(w http.ResponseWriter, r *http.Request) {
	viewer, tweetID, err := h.target(r)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	var req replyRequest
	if err := decodeBody(w, r, &req, map[string]*string{"comment": &req.Comment}); err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	reply, err := h.tweetService.Reply(r.Context(), viewer.ID, tweetID, req.Comment)
	if err != nil {
		handleError(w, r, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, response.Envelope{
		Status: response.StatusSuccess,
		Data:   newReplyDTO(reply),
	})
}
