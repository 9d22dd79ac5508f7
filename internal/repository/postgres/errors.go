package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

const uniqueViolation = "23505"

// mapUniqueViolation translates unique constraint violations into model errors.
// Other errors are returned unchanged.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "users_account_key":
		return model.ErrAccountTaken
	case "users_email_key":
		return model.ErrEmailTaken
	case "likes_user_id_tweet_id_key":
		return model.ErrAlreadyLiked
	default:
		return err
	}
}
