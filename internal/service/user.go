package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
	"github.com/dtroode/simple-twitter-server/internal/password"
)

// User serves profile pages, activity listings and account edits.
type User struct {
	userStore  model.UserStore
	tweetStore model.TweetStore
	replyStore model.ReplyStore
	likeStore  model.LikeStore
	storage    model.Storage
	hasher     password.Hasher
	logger     *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	tweetStore model.TweetStore,
	replyStore model.ReplyStore,
	likeStore model.LikeStore,
	storage model.Storage,
	hasher password.Hasher,
	logger *logger.Logger,
) *User {
	return &User{
		userStore:  userStore,
		tweetStore: tweetStore,
		replyStore: replyStore,
		likeStore:  likeStore,
		storage:    storage,
		hasher:     hasher,
		logger:     logger,
	}
}

func (s *User) getUser(ctx context.Context, userID int64) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetProfile returns the user with both sides of its follow graph and whether
// the viewer follows them.
func (s *User) GetProfile(ctx context.Context, userID, viewerID int64) (model.Profile, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.Profile{}, err
	}

	var (
		followings, followers []model.User
		isFollowed            bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		followings, err = s.userStore.GetFollowings(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		followers, err = s.userStore.GetFollowers(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		isFollowed, err = s.userStore.IsFollowing(gctx, viewerID, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("User service: failed to load follow graph",
			"user_id", userID,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to load follow graph: %w", err)
	}

	return model.Profile{
		User:       user.Identity(),
		Followings: identities(followings),
		Followers:  identities(followers),
		IsFollowed: isFollowed,
	}, nil
}

func (s *User) GetTweets(ctx context.Context, userID, viewerID int64) ([]model.TweetView, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	tweets, err := s.tweetStore.ListByUser(ctx, userID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user tweets: %w", err)
	}
	return tweets, nil
}

func (s *User) GetRepliedTweets(ctx context.Context, userID int64) ([]model.ReplyView, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	replies, err := s.replyStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user replies: %w", err)
	}
	return replies, nil
}

func (s *User) GetLikes(ctx context.Context, userID, viewerID int64) ([]model.LikeView, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	likes, err := s.likeStore.ListByUser(ctx, userID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user likes: %w", err)
	}
	return likes, nil
}

func (s *User) GetFollowings(ctx context.Context, userID int64) (model.FollowList, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.FollowList{}, err
	}

	users, err := s.userStore.GetFollowings(ctx, userID)
	if err != nil {
		return model.FollowList{}, fmt.Errorf("failed to get followings: %w", err)
	}
	return model.FollowList{Owner: user.Identity(), Users: identities(users)}, nil
}

func (s *User) GetFollowers(ctx context.Context, userID int64) (model.FollowList, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.FollowList{}, err
	}

	users, err := s.userStore.GetFollowers(ctx, userID)
	if err != nil {
		return model.FollowList{}, fmt.Errorf("failed to get followers: %w", err)
	}
	return model.FollowList{Owner: user.Identity(), Users: identities(users)}, nil
}

// UpdateProfile edits the caller's own name, introduction and images.
// Nil fields keep their stored values.
func (s *User) UpdateProfile(ctx context.Context, editor model.Identity, userID int64, params model.ProfileParams) (model.Identity, error) {
	if editor.ID != userID {
		return model.Identity{}, model.NewValidationError(model.MsgForbiddenEdit)
	}
	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return model.Identity{}, model.NewValidationError(model.MsgEmptyFields)
		}
		if utf8.RuneCountInString(*params.Name) > model.MaxNameLength {
			return model.Identity{}, model.NewValidationError(model.MsgNameTooLong)
		}
	}
	if params.Introduction != nil && utf8.RuneCountInString(*params.Introduction) > model.MaxIntroductionLength {
		return model.Identity{}, model.NewValidationError(model.MsgIntroTooLong)
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.Identity{}, err
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Introduction != nil {
		user.Introduction = *params.Introduction
	}
	if params.Avatar != nil {
		url, err := s.upload(ctx, "avatars", userID, *params.Avatar)
		if err != nil {
			return model.Identity{}, err
		}
		user.Avatar = url
	}
	if params.Cover != nil {
		url, err := s.upload(ctx, "covers", userID, *params.Cover)
		if err != nil {
			return model.Identity{}, err
		}
		user.Cover = url
	}

	saved, err := s.userStore.Update(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, model.ErrUserNotFound
		}
		s.logger.Error("User service: failed to update profile",
			"user_id", userID,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("User service: profile updated",
		"user_id", userID)

	return saved.Identity(), nil
}

// UpdateSettings replaces the caller's account, name, email and password.
func (s *User) UpdateSettings(ctx context.Context, editor model.Identity, userID int64, params model.AccountSettingsParams) (model.Identity, error) {
	if editor.ID != userID {
		return model.Identity{}, model.NewValidationError(model.MsgForbiddenEdit)
	}
	if err := validateAccountFields(params.Account, params.Name, params.Email, params.Password, params.CheckPassword); err != nil {
		return model.Identity{}, err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return model.Identity{}, err
	}

	if err := checkAccountAvailable(ctx, s.userStore, params.Account, params.Email, userID); err != nil {
		return model.Identity{}, err
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user.Account = params.Account
	user.Name = params.Name
	user.Email = params.Email
	user.PasswordHash = hash

	saved, err := s.userStore.Update(ctx, user)
	if err != nil {
		if verr := takenError(err); verr != nil {
			return model.Identity{}, verr
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, model.ErrUserNotFound
		}
		s.logger.Error("User service: failed to update settings",
			"user_id", userID,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to update settings: %w", err)
	}

	s.logger.Info("User service: settings updated",
		"user_id", userID)

	return saved.Identity(), nil
}

func (s *User) upload(ctx context.Context, kind string, userID int64, upload model.Upload) (string, error) {
	key := fmt.Sprintf("%s/%d/%s%s", kind, userID, uuid.NewString(), path.Ext(upload.Filename))
	if err := s.storage.Upload(ctx, key, upload); err != nil {
		s.logger.Error("User service: failed to upload image",
			"user_id", userID,
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload %s: %w", kind, err)
	}
	return s.storage.URL(key), nil
}

func identities(users []model.User) []model.Identity {
	out := make([]model.Identity, 0, len(users))
	for _, u := range users {
		out = append(out, u.Identity())
	}
	return out
}
