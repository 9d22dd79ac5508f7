package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

var _ model.TweetStore = (*TweetRepository)(nil)

// tweetViewSelect expects the viewer id as $1.
const tweetViewSelect = `SELECT t.id, t.user_id, t.description, t.created_at, t.updated_at,
		  u.id, u.account, u.name, u.avatar,
		  (SELECT COUNT(*) FROM likes l WHERE l.tweet_id = t.id),
		  (SELECT COUNT(*) FROM replies r WHERE r.tweet_id = t.id),
		  EXISTS (SELECT 1 FROM likes l WHERE l.tweet_id = t.id AND l.user_id = $1)
		  FROM tweets t JOIN users u ON u.id = t.user_id`

type TweetRepository struct {
	db DBTX
}

func NewTweetRepository(db DBTX) *TweetRepository {
	return &TweetRepository{
		db: db,
	}
}

func scanTweetView(row rowScanner, v *model.TweetView) error {
	return row.Scan(
		&v.ID, &v.UserID, &v.Description, &v.CreatedAt, &v.UpdatedAt,
		&v.Author.ID, &v.Author.Account, &v.Author.Name, &v.Author.Avatar,
		&v.LikedCount, &v.RepliedCount, &v.IsLiked,
	)
}

func (r *TweetRepository) Create(ctx context.Context, tweet model.Tweet) (model.Tweet, error) {
	query := `INSERT INTO tweets (user_id, description)
			  VALUES ($1, $2)
			  RETURNING id, user_id, description, created_at, updated_at`

	var saved model.Tweet
	err := r.db.QueryRowContext(ctx, query, tweet.UserID, tweet.Description).
		Scan(&saved.ID, &saved.UserID, &saved.Description, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return model.Tweet{}, fmt.Errorf("failed to create tweet: %w", err)
	}

	return saved, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id, viewerID int64) (model.TweetView, error) {
	query := tweetViewSelect + ` WHERE t.id = $2`

	var v model.TweetView
	if err := scanTweetView(r.db.QueryRowContext(ctx, query, viewerID, id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TweetView{}, model.ErrNotFound
		}
		return model.TweetView{}, fmt.Errorf("failed to get tweet: %w", err)
	}

	return v, nil
}

func (r *TweetRepository) List(ctx context.Context, viewerID int64) ([]model.TweetView, error) {
	query := tweetViewSelect + ` ORDER BY t.created_at DESC, t.id DESC`

	return r.listViews(ctx, query, viewerID)
}

func (r *TweetRepository) ListByUser(ctx context.Context, userID, viewerID int64) ([]model.TweetView, error) {
	query := tweetViewSelect + ` WHERE t.user_id = $2 ORDER BY t.created_at DESC, t.id DESC`

	return r.listViews(ctx, query, viewerID, userID)
}

func (r *TweetRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *TweetRepository) listViews(ctx context.Context, query string, args ...any) ([]model.TweetView, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	defer rows.Close()

	var tweets []model.TweetView
	for rows.Next() {
		var v model.TweetView
		if err := scanTweetView(rows, &v); err != nil {
			return nil, fmt.Errorf("failed to scan tweet: %w", err)
		}
		tweets = append(tweets, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tweets: %w", err)
	}

	return tweets, nil
}
