package handler

import (
	"time"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

// Response field names follow the existing web client, which expects the
// capitalized association keys (User, Tweet, UserId, TweetId).

type authorDTO struct {
	ID      int64  `json:"id"`
	Account string `json:"account"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
}

type tweetDTO struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"UserId"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	User         authorDTO `json:"User"`
	LikedCount   int       `json:"likedCount"`
	RepliedCount int       `json:"repliedCount"`
	IsLiked      bool      `json:"isLiked"`
}

type repliedTweetAuthorDTO struct {
	Name    string `json:"name"`
	Account string `json:"account"`
}

type repliedTweetDTO struct {
	ID          int64                 `json:"id"`
	UserID      int64                 `json:"UserId"`
	Description string                `json:"description"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	User        repliedTweetAuthorDTO `json:"User"`
}

type replyDTO struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"UserId"`
	TweetID   int64            `json:"TweetId"`
	Comment   string           `json:"comment"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	User      *authorDTO       `json:"User,omitempty"`
	Tweet     *repliedTweetDTO `json:"Tweet,omitempty"`
}

type likeDTO struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"UserId"`
	TweetID   int64     `json:"TweetId"`
	CreatedAt time.Time `json:"createdAt"`
	Tweet     *tweetDTO `json:"Tweet,omitempty"`
}

type profileDTO struct {
	model.Identity
	Followings     []model.Identity `json:"Followings"`
	Followers      []model.Identity `json:"Followers"`
	FollowingCount int              `json:"followingCount"`
	FollowerCount  int              `json:"followerCount"`
	IsFollowed     bool             `json:"isFollowed"`
}

type followerUserDTO struct {
	FollowerID int64  `json:"followerId"`
	Name       string `json:"name"`
}

type followingDTO struct {
	FollowingID  int64           `json:"followingId"`
	Account      string          `json:"account"`
	Email        string          `json:"email"`
	Avatar       string          `json:"avatar"`
	Cover        string          `json:"cover"`
	Introduction string          `json:"introduction"`
	FollowerUser followerUserDTO `json:"followerUser"`
}

type followingUserDTO struct {
	FollowingID int64  `json:"followingId"`
	Name        string `json:"name"`
}

type followerDTO struct {
	FollowerID    int64            `json:"followerId"`
	Account       string           `json:"account"`
	Email         string           `json:"email"`
	Avatar        string           `json:"avatar"`
	Cover         string           `json:"cover"`
	Introduction  string           `json:"introduction"`
	FollowingUser followingUserDTO `json:"followingUser"`
}

type userStatsDTO struct {
	model.Identity
	TweetCount     int `json:"tweetCount"`
	LikeCount      int `json:"likeCount"`
	FollowingCount int `json:"followingCount"`
	FollowerCount  int `json:"followerCount"`
}

type sessionDTO struct {
	Token string         `json:"token"`
	User  model.Identity `json:"user"`
}

func newAuthorDTO(a model.Author) authorDTO {
	return authorDTO{ID: a.ID, Account: a.Account, Name: a.Name, Avatar: a.Avatar}
}

func newTweetDTO(v model.TweetView) tweetDTO {
	return tweetDTO{
		ID:           v.ID,
		UserID:       v.UserID,
		Description:  v.Description,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		User:         newAuthorDTO(v.Author),
		LikedCount:   v.LikedCount,
		RepliedCount: v.RepliedCount,
		IsLiked:      v.IsLiked,
	}
}

func newTweetDTOs(views []model.TweetView) []tweetDTO {
	out := make([]tweetDTO, 0, len(views))
	for _, v := range views {
		out = append(out, newTweetDTO(v))
	}
	return out
}

func newReplyDTO(r model.Reply) replyDTO {
	return replyDTO{
		ID:        r.ID,
		UserID:    r.UserID,
		TweetID:   r.TweetID,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func newReplyDTOs(views []model.ReplyView) []replyDTO {
	out := make([]replyDTO, 0, len(views))
	for _, v := range views {
		dto := newReplyDTO(v.Reply)
		author := newAuthorDTO(v.Author)
		dto.User = &author
		dto.Tweet = &repliedTweetDTO{
			ID:          v.Tweet.ID,
			UserID:      v.Tweet.UserID,
			Description: v.Tweet.Description,
			CreatedAt:   v.Tweet.CreatedAt,
			UpdatedAt:   v.Tweet.UpdatedAt,
			User:        repliedTweetAuthorDTO{Name: v.TweetAuthor.Name, Account: v.TweetAuthor.Account},
		}
		out = append(out, dto)
	}
	return out
}

func newLikeDTO(l model.Like) likeDTO {
	return likeDTO{ID: l.ID, UserID: l.UserID, TweetID: l.TweetID, CreatedAt: l.CreatedAt}
}

func newLikeDTOs(views []model.LikeView) []likeDTO {
	out := make([]likeDTO, 0, len(views))
	for _, v := range views {
		dto := newLikeDTO(v.Like)
		tweet := newTweetDTO(v.Tweet)
		dto.Tweet = &tweet
		out = append(out, dto)
	}
	return out
}

func newProfileDTO(p model.Profile) profileDTO {
	return profileDTO{
		Identity:       p.User,
		Followings:     nonNil(p.Followings),
		Followers:      nonNil(p.Followers),
		FollowingCount: len(p.Followings),
		FollowerCount:  len(p.Followers),
		IsFollowed:     p.IsFollowed,
	}
}

func newFollowingDTOs(list model.FollowList) []followingDTO {
	out := make([]followingDTO, 0, len(list.Users))
	for _, u := range list.Users {
		out = append(out, followingDTO{
			FollowingID:  u.ID,
			Account:      u.Account,
			Email:        u.Email,
			Avatar:       u.Avatar,
			Cover:        u.Cover,
			Introduction: u.Introduction,
			FollowerUser: followerUserDTO{FollowerID: list.Owner.ID, Name: list.Owner.Name},
		})
	}
	return out
}

func newFollowerDTOs(list model.FollowList) []followerDTO {
	out := make([]followerDTO, 0, len(list.Users))
	for _, u := range list.Users {
		out = append(out, followerDTO{
			FollowerID:    u.ID,
			Account:       u.Account,
			Email:         u.Email,
			Avatar:        u.Avatar,
			Cover:         u.Cover,
			Introduction:  u.Introduction,
			FollowingUser: followingUserDTO{FollowingID: list.Owner.ID, Name: list.Owner.Name},
		})
	}
	return out
}

func newUserStatsDTOs(stats []model.UserStats) []userStatsDTO {
	out := make([]userStatsDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, userStatsDTO{
			Identity:       s.User.Identity(),
			TweetCount:     s.TweetCount,
			LikeCount:      s.LikeCount,
			FollowingCount: s.FollowingCount,
			FollowerCount:  s.FollowerCount,
		})
	}
	return out
}

func nonNil(ids []model.Identity) []model.Identity {
	if ids == nil {
		return []model.Identity{}
	}
	return ids
}
