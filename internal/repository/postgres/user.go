package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, account, name, email, password, avatar, cover, introduction, role, created_at, updated_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *model.User) error {
	return row.Scan(
		&user.ID, &user.Account, &user.Name, &user.Email, &user.PasswordHash,
		&user.Avatar, &user.Cover, &user.Introduction, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
}

func (r *UserRepository) getOne(ctx context.Context, what, query string, arg any) (model.User, error) {
	var user model.User
	err := scanUser(r.db.QueryRowContext(ctx, query, arg), &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", what, err)
	}

	return user, nil
}

func (r *UserRepository) GetByAccount(ctx context.Context, account string) (model.User, error) {
	return r.getOne(ctx, "account", `SELECT `+userColumns+` FROM users WHERE account = $1`, account)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getOne(ctx, "email", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	return r.getOne(ctx, "id", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (account, name, email, password, avatar, cover, introduction, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + userColumns

	var saved model.User
	err := scanUser(r.db.QueryRowContext(ctx, query,
		user.Account, user.Name, user.Email, user.PasswordHash,
		user.Avatar, user.Cover, user.Introduction, user.Role,
	), &saved)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", mapUniqueViolation(err))
	}

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `UPDATE users
			  SET account = $1, name = $2, email = $3, password = $4, avatar = $5, cover = $6, introduction = $7, updated_at = now()
			  WHERE id = $8
			  RETURNING ` + userColumns

	var saved model.User
	err := scanUser(r.db.QueryRowContext(ctx, query,
		user.Account, user.Name, user.Email, user.PasswordHash,
		user.Avatar, user.Cover, user.Introduction, user.ID,
	), &saved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", mapUniqueViolation(err))
	}

	return saved, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.UserStats, error) {
	query := `SELECT u.id, u.account, u.name, u.email, u.password, u.avatar, u.cover, u.introduction, u.role, u.created_at, u.updated_at,
			  (SELECT COUNT(*) FROM tweets t WHERE t.user_id = u.id),
			  (SELECT COUNT(*) FROM likes l JOIN tweets t ON t.id = l.tweet_id WHERE t.user_id = u.id),
			  (SELECT COUNT(*) FROM followships f WHERE f.follower_id = u.id),
			  (SELECT COUNT(*) FROM followships f WHERE f.following_id = u.id)
			  FROM users u
			  ORDER BY u.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var result []model.UserStats
	for rows.Next() {
		var s model.UserStats
		err := rows.Scan(
			&s.ID, &s.Account, &s.Name, &s.Email, &s.PasswordHash,
			&s.Avatar, &s.Cover, &s.Introduction, &s.Role, &s.CreatedAt, &s.UpdatedAt,
			&s.TweetCount, &s.LikeCount, &s.FollowingCount, &s.FollowerCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return result, nil
}

func (r *UserRepository) GetFollowings(ctx context.Context, userID int64) ([]model.User, error) {
	query := `SELECT u.id, u.account, u.name, u.email, u.password, u.avatar, u.cover, u.introduction, u.role, u.created_at, u.updated_at
			  FROM followships f JOIN users u ON u.id = f.following_id
			  WHERE f.follower_id = $1
			  ORDER BY f.created_at DESC`

	return r.listUsers(ctx, "followings", query, userID)
}

func (r *UserRepository) GetFollowers(ctx context.Context, userID int64) ([]model.User, error) {
	query := `SELECT u.id, u.account, u.name, u.email, u.password, u.avatar, u.cover, u.introduction, u.role, u.created_at, u.updated_at
			  FROM followships f JOIN users u ON u.id = f.follower_id
			  WHERE f.following_id = $1
			  ORDER BY f.created_at DESC`

	return r.listUsers(ctx, "followers", query, userID)
}

func (r *UserRepository) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM followships WHERE follower_id = $1 AND following_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, followerID, followingID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check followship: %w", err)
	}

	return exists, nil
}

func (r *UserRepository) listUsers(ctx context.Context, what, query string, userID int64) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", what, err)
	}

	return users, nil
}
