package model

import (
	"context"
	"time"
)

// TweetStore defines persistence operations for tweets.
type TweetStore interface {
	Create(ctx context.Context, tweet Tweet) (Tweet, error)
	GetByID(ctx context.Context, id, viewerID int64) (TweetView, error)
	List(ctx context.Context, viewerID int64) ([]TweetView, error)
	ListByUser(ctx context.Context, userID, viewerID int64) ([]TweetView, error)
	Delete(ctx context.Context, id int64) error
}

// ReplyStore defines persistence operations for replies.
type ReplyStore interface {
	Create(ctx context.Context, reply Reply) (Reply, error)
	ListByTweet(ctx context.Context, tweetID int64) ([]ReplyView, error)
	ListByUser(ctx context.Context, userID int64) ([]ReplyView, error)
}

// LikeStore defines persistence operations for likes.
type LikeStore interface {
	Create(ctx context.Context, like Like) (Like, error)
	Delete(ctx context.Context, userID, tweetID int64) error
	ListByUser(ctx context.Context, userID, viewerID int64) ([]LikeView, error)
}

// Tweet is a stored tweet.
type Tweet struct {
	ID          int64
	UserID      int64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TweetView is a tweet joined with its author and engagement counters.
type TweetView struct {
	Tweet
	Author       Author
	LikedCount   int
	RepliedCount int
	IsLiked      bool
}

// Author is the public subset of a user shown next to content.
type Author struct {
	ID      int64
	Account string
	Name    string
	Avatar  string
}

// Reply is a stored reply to a tweet.
type Reply struct {
	ID        int64
	UserID    int64
	TweetID   int64
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReplyView is a reply joined with its author and the replied tweet.
type ReplyView struct {
	Reply
	Author      Author
	Tweet       Tweet
	TweetAuthor Author
}

// Like is a stored like of a tweet.
type Like struct {
	ID        int64
	UserID    int64
	TweetID   int64
	CreatedAt time.Time
}

// LikeView is a like joined with the liked tweet.
type LikeView struct {
	Like
	Tweet TweetView
}
