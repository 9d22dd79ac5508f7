package model

import (
	"context"
	"time"
)

// Role is an access level assigned to a user account.
type Role string

const (
	// RoleUser is an ordinary account.
	RoleUser Role = "user"
	// RoleAdmin is a back-office account.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserStore defines persistence operations for users and their follow edges.
type UserStore interface {
	GetByAccount(ctx context.Context, account string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	List(ctx context.Context) ([]UserStats, error)
	GetFollowings(ctx context.Context, userID int64) ([]User, error)
	GetFollowers(ctx context.Context, userID int64) ([]User, error)
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
}

// User represents a stored user together with its credential.
type User struct {
	ID           int64
	Account      string
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
	Cover        string
	Introduction string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity returns the public part of the user suitable for token claims and
// API responses.
func (u User) Identity() Identity {
	return Identity{
		ID:           u.ID,
		Account:      u.Account,
		Name:         u.Name,
		Email:        u.Email,
		Avatar:       u.Avatar,
		Cover:        u.Cover,
		Introduction: u.Introduction,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// UserStats is a user with aggregated activity counters, used by admin listings.
type UserStats struct {
	User
	TweetCount     int
	LikeCount      int
	FollowingCount int
	FollowerCount  int
}

// Profile is a user page: the user plus both sides of its follow graph.
type Profile struct {
	User       Identity
	Followings []Identity
	Followers  []Identity
	IsFollowed bool
}

// SignUpParams contains the fields submitted at registration.
type SignUpParams struct {
	Account       string
	Name          string
	Email         string
	Password      string
	CheckPassword string
}

// AccountSettingsParams contains the fields submitted on the account settings page.
type AccountSettingsParams struct {
	Account       string
	Name          string
	Email         string
	Password      string
	CheckPassword string
}

// ProfileParams contains the editable profile fields. Nil pointers keep the
// stored value.
type ProfileParams struct {
	Name         *string
	Introduction *string
	Avatar       *Upload
	Cover        *Upload
}

// SessionResult is returned on successful sign-in.
type SessionResult struct {
	Token string
	User  Identity
}

// FollowList is one side of a user's follow graph.
type FollowList struct {
	Owner Identity
	Users []Identity
}
