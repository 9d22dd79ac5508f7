package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
)

// Admin serves back-office listings and moderation.
type Admin struct {
	userStore  model.UserStore
	tweetStore model.TweetStore
	logger     *logger.Logger
}

func NewAdmin(userStore model.UserStore, tweetStore model.TweetStore, logger *logger.Logger) *Admin {
	return &Admin{
		userStore:  userStore,
		tweetStore: tweetStore,
		logger:     logger,
	}
}

func (s *Admin) ListUsers(ctx context.Context) ([]model.UserStats, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *Admin) ListTweets(ctx context.Context) ([]model.TweetView, error) {
	tweets, err := s.tweetStore.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	return tweets, nil
}

// DeleteTweet removes a tweet together with its replies and likes.
func (s *Admin) DeleteTweet(ctx context.Context, tweetID int64) error {
	err := s.tweetStore.Delete(ctx, tweetID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrTweetNotFound
		}
		return fmt.Errorf("failed to delete tweet: %w", err)
	}

	s.logger.Info("Admin service: tweet deleted",
		"tweet_id", tweetID)

	return nil
}
