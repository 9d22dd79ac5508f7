package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

var _ model.LikeStore = (*LikeRepository)(nil)

type LikeRepository struct {
	db DBTX
}

func NewLikeRepository(db DBTX) *LikeRepository {
	return &LikeRepository{
		db: db,
	}
}

// Create stores a like. A repeated like by the same user returns model.ErrAlreadyLiked.
func (r *LikeRepository) Create(ctx context.Context, like model.Like) (model.Like, error) {
	query := `INSERT INTO likes (user_id, tweet_id)
			  VALUES ($1, $2)
			  RETURNING id, user_id, tweet_id, created_at`

	var saved model.Like
	err := r.db.QueryRowContext(ctx, query, like.UserID, like.TweetID).
		Scan(&saved.ID, &saved.UserID, &saved.TweetID, &saved.CreatedAt)
	if err != nil {
		return model.Like{}, fmt.Errorf("failed to create like: %w", mapUniqueViolation(err))
	}

	return saved, nil
}

// Delete removes the like of userID on tweetID. It returns model.ErrNotFound
// when there was nothing to remove.
func (r *LikeRepository) Delete(ctx context.Context, userID, tweetID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE user_id = $1 AND tweet_id = $2`, userID, tweetID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
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

func (r *LikeRepository) ListByUser(ctx context.Context, userID, viewerID int64) ([]model.LikeView, error) {
	query := `SELECT lk.id, lk.user_id, lk.tweet_id, lk.created_at,
			  t.id, t.user_id, t.description, t.created_at, t.updated_at,
			  u.id, u.account, u.name, u.avatar,
			  (SELECT COUNT(*) FROM likes l WHERE l.tweet_id = t.id),
			  (SELECT COUNT(*) FROM replies r WHERE r.tweet_id = t.id),
			  EXISTS (SELECT 1 FROM likes l WHERE l.tweet_id = t.id AND l.user_id = $1)
			  FROM likes lk
			  JOIN tweets t ON t.id = lk.tweet_id
			  JOIN users u ON u.id = t.user_id
			  WHERE lk.user_id = $2
			  ORDER BY lk.created_at DESC, lk.id DESC`

	rows, err := r.db.QueryContext(ctx, query, viewerID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	defer rows.Close()

	var likes []model.LikeView
	for rows.Next() {
		var v model.LikeView
		err := rows.Scan(
			&v.ID, &v.UserID, &v.TweetID, &v.CreatedAt,
			&v.Tweet.ID, &v.Tweet.UserID, &v.Tweet.Description, &v.Tweet.CreatedAt, &v.Tweet.UpdatedAt,
			&v.Tweet.Author.ID, &v.Tweet.Author.Account, &v.Tweet.Author.Name, &v.Tweet.Author.Avatar,
			&v.Tweet.LikedCount, &v.Tweet.RepliedCount, &v.Tweet.IsLiked,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		likes = append(likes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate likes: %w", err)
	}

	return likes, nil
}
