package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

var _ model.ReplyStore = (*ReplyRepository)(nil)

const replyViewSelect = `SELECT r.id, r.user_id, r.tweet_id, r.comment, r.created_at, r.updated_at,
		  ru.id, ru.account, ru.name, ru.avatar,
		  t.id, t.user_id, t.description, t.created_at, t.updated_at,
		  tu.id, tu.account, tu.name, tu.avatar
		  FROM replies r
		  JOIN users ru ON ru.id = r.user_id
		  JOIN tweets t ON t.id = r.tweet_id
		  JOIN users tu ON tu.id = t.user_id`

type ReplyRepository struct {
	db DBTX
}

func NewReplyRepository(db DBTX) *ReplyRepository {
	return &ReplyRepository{
		db: db,
	}
}

func (r *ReplyRepository) Create(ctx context.Context, reply model.Reply) (model.Reply, error) {
	query := `INSERT INTO replies (user_id, tweet_id, comment)
			  VALUES ($1, $2, $3)
			  RETURNING id, user_id, tweet_id, comment, created_at, updated_at`

	var saved model.Reply
	err := r.db.QueryRowContext(ctx, query, reply.UserID, reply.TweetID, reply.Comment).
		Scan(&saved.ID, &saved.UserID, &saved.TweetID, &saved.Comment, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return model.Reply{}, fmt.Errorf("failed to create reply: %w", err)
	}

	return saved, nil
}

func (r *ReplyRepository) ListByTweet(ctx context.Context, tweetID int64) ([]model.ReplyView, error) {
	query := replyViewSelect + ` WHERE r.tweet_id = $1 ORDER BY r.created_at DESC, r.id DESC`

	return r.listViews(ctx, query, tweetID)
}

func (r *ReplyRepository) ListByUser(ctx context.Context, userID int64) ([]model.ReplyView, error) {
	query := replyViewSelect + ` WHERE r.user_id = $1 ORDER BY r.created_at DESC, r.id DESC`

	return r.listViews(ctx, query, userID)
}

func (r *ReplyRepository) listViews(ctx context.Context, query string, id int64) ([]model.ReplyView, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	defer rows.Close()

	var replies []model.ReplyView
	for rows.Next() {
		var v model.ReplyView
		err := rows.Scan(
			&v.ID, &v.UserID, &v.TweetID, &v.Comment, &v.CreatedAt, &v.UpdatedAt,
			&v.Author.ID, &v.Author.Account, &v.Author.Name, &v.Author.Avatar,
			&v.Tweet.ID, &v.Tweet.UserID, &v.Tweet.Description, &v.Tweet.CreatedAt, &v.Tweet.UpdatedAt,
			&v.TweetAuthor.ID, &v.TweetAuthor.Account, &v.TweetAuthor.Name, &v.TweetAuthor.Avatar,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}

	return replies, nil
}
