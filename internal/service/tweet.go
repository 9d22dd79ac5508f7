package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// Tweet serves the timeline, tweet pages, likes and replies.
type Tweet struct {
	tweetStore model.TweetStore
	replyStore model.ReplyStore
	likeStore  model.LikeStore
	logger     *logger.Logger
}

func NewTweet(
	tweetStore model.TweetStore,
	replyStore model.ReplyStore,
	likeStore model.LikeStore,
	logger *logger.Logger,
) *Tweet {
	return &Tweet{
		tweetStore: tweetStore,
		replyStore: replyStore,
		likeStore:  likeStore,
		logger:     logger,
	}
}

func (s *Tweet) List(ctx context.Context, viewerID int64) ([]model.TweetView, error) {
	tweets, err := s.tweetStore.List(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	return tweets, nil
}

func (s *Tweet) Get(ctx context.Context, tweetID, viewerID int64) (model.TweetView, error) {
	tweet, err := s.tweetStore.GetByID(ctx, tweetID, viewerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.TweetView{}, model.ErrTweetNotFound
		}
		return model.TweetView{}, fmt.Errorf("failed to get tweet: %w", err)
	}
	return tweet, nil
}

func (s *Tweet) Post(ctx context.Context, userID int64, description string) (model.Tweet, error) {
	if strings.TrimSpace(description) == "" {
		return model.Tweet{}, model.NewValidationError(model.MsgEmptyContent)
	}
	if utf8.RuneCountInString(description) > model.MaxTweetLength {
		return model.Tweet{}, model.NewValidationError(model.MsgTweetTooLong)
	}

	tweet, err := s.tweetStore.Create(ctx, model.Tweet{UserID: userID, Description: description})
	if err != nil {
		s.logger.Error("Tweet service: failed to create tweet",
			"user_id", userID,
			"error", err.Error())
		return model.Tweet{}, fmt.Errorf("failed to create tweet: %w", err)
	}

	s.logger.Info("Tweet service: tweet posted",
		"user_id", userID,
		"tweet_id", tweet.ID)

	return tweet, nil
}

func (s *Tweet) Like(ctx context.Context, userID, tweetID int64) (model.Like, error) {
	if _, err := s.Get(ctx, tweetID, userID); err != nil {
		return model.Like{}, err
	}

	like, err := s.likeStore.Create(ctx, model.Like{UserID: userID, TweetID: tweetID})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyLiked) {
			return model.Like{}, model.NewValidationError(model.MsgAlreadyLiked)
		}
		return model.Like{}, fmt.Errorf("failed to like tweet: %w", err)
	}
	return like, nil
}

func (s *Tweet) Unlike(ctx context.Context, userID, tweetID int64) error {
	if _, err := s.Get(ctx, tweetID, userID); err != nil {
		return err
	}

	err := s.likeStore.Delete(ctx, userID, tweetID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewValidationError(model.MsgNotLiked)
		}
		return fmt.Errorf("failed to unlike tweet: %w", err)
	}
	return nil
}

func (s *Tweet) Replies(ctx context.Context, tweetID, viewerID int64) ([]model.ReplyView, error) {
	if _, err := s.Get(ctx, tweetID, viewerID); err != nil {
		return nil, err
	}

	replies, err := s.replyStore.ListByTweet(ctx, tweetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	return replies, nil
}

func (s *Tweet) Reply(ctx context.Context, userID, tweetID int64, comment string) (model.Reply, error) {
	if strings.TrimSpace(comment) == "" {
		return model.Reply{}, model.NewValidationError(model.MsgEmptyContent)
	}
	if _, err := s.Get(ctx, tweetID, userID); err != nil {
		return model.Reply{}, err
	}

	reply, err := s.replyStore.Create(ctx, model.Reply{UserID: userID, TweetID: tweetID, Comment: comment})
	if err != nil {
		s.logger.Error("Tweet service: failed to create reply",
			"user_id", userID,
			"tweet_id", tweetID,
			"error", err.Error())
		return model.Reply{}, fmt.Errorf("failed to create reply: %w", err)
	}
	return reply, nil
}
