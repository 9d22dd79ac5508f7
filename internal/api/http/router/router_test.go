package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reqctx "github.com/dtroode/simple-twitter-server/internal/api/http/context"
	"github.com/dtroode/simple-twitter-server/internal/mocks"
	"github.com/dtroode/simple-twitter-server/internal/model"
	"github.com/dtroode/simple-twitter-server/internal/testutil"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type fixture struct {
	handler  http.Handler
	auth     *mocks.AuthService
	authn    *mocks.Authenticator
	users    *mocks.UserService
	tweets   *mocks.TweetService
	admin    *mocks.AdminService
	registry *prometheus.Registry
}

func newFixture(t *testing.T, ping error) *fixture {
	f := &fixture{
		auth:     mocks.NewAuthService(t),
		authn:    mocks.NewAuthenticator(t),
		users:    mocks.NewUserService(t),
		tweets:   mocks.NewTweetService(t),
		admin:    mocks.NewAdminService(t),
		registry: prometheus.NewRegistry(),
	}

	f.authn.On("Authenticate", mock.Anything, "user-token").
		Return(model.Identity{ID: 1, Account: "user1", Role: model.RoleUser}, nil).Maybe()
	f.authn.On("Authenticate", mock.Anything, "admin-token").
		Return(model.Identity{ID: 99, Account: "root", Role: model.RoleAdmin}, nil).Maybe()
	f.authn.On("Authenticate", mock.Anything, "bad-token").
		Return(model.Identity{}, model.ErrInvalidToken).Maybe()

	r := New(Services{
		Auth:          f.auth,
		Authenticator: f.authn,
		User:          f.users,
		Tweet:         f.tweets,
		Admin:         f.admin,
	}, reqctx.NewManager(), pingerFunc(func(context.Context) error { return ping }), f.registry, 1<<20, testutil.MakeNoopLogger())
	f.handler = r.Register()

	return f
}

func (f *fixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newFixture(t, nil)
	f.auth.On("SignIn", mock.Anything, "user1", "pw", model.RoleUser).
		Return(model.SessionResult{Token: "t", User: model.Identity{ID: 1}}, nil)
	f.auth.On("SignIn", mock.Anything, "root", "pw", model.RoleAdmin).
		Return(model.SessionResult{Token: "a", User: model.Identity{ID: 99}}, nil)
	f.auth.On("SignUp", mock.Anything, mock.Anything).
		Return(model.Identity{ID: 2}, nil)

	rec := f.do(http.MethodPost, "/users/signin", "", `{"account":"user1","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/admin/signin", "", `{"account":"root","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/users", "", `{"account":"u2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), model.MsgSignUpSuccess)
}

func TestRouter_RequiresToken(t *testing.T) {
	f := newFixture(t, nil)

	for _, target := range []string{"/tweets", "/users/1", "/users/1/followers", "/admin/users"} {
		t.Run(target, func(t *testing.T) {
			rec := f.do(http.MethodGet, target, "", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"status":"error","message":"unauthorized"}`, rec.Body.String())

			rec = f.do(http.MethodGet, target, "bad-token", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_AdminGate(t *testing.T) {
	f := newFixture(t, nil)
	f.admin.On("ListUsers", mock.Anything).Return([]model.UserStats{}, nil)
	f.admin.On("DeleteTweet", mock.Anything, int64(5)).Return(nil)

	rec := f.do(http.MethodGet, "/admin/users", "user-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"permission denied"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/admin/users", "admin-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(http.MethodDelete, "/admin/tweets/5", "admin-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AuthenticatedRoutes(t *testing.T) {
	f := newFixture(t, nil)
	f.tweets.On("List", mock.Anything, int64(1)).Return([]model.TweetView{}, nil)
	f.tweets.On("Post", mock.Anything, int64(1), "hi").Return(model.Tweet{ID: 3}, nil)
	f.tweets.On("Like", mock.Anything, int64(1), int64(3)).Return(model.Like{ID: 1}, nil)
	f.users.On("GetFollowers", mock.Anything, int64(2)).Return(model.FollowList{}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/tweets", "user-token", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/tweets", "user-token", `{"description":"hi"}`).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/tweets/3/like", "user-token", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/users/2/followers", "user-token", "").Code)
}

func TestRouter_RequestID(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/healthz", "", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_Healthz(t *testing.T) {
	rec := newFixture(t, nil).do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = newFixture(t, errors.New("connection refused")).do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	f := newFixture(t, nil)
	f.do(http.MethodGet, "/healthz", "", "")

	rec := f.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `twitter_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestRouter_NotFound(t *testing.T) {
	rec := newFixture(t, nil).do(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
