package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/simple-twitter-server/internal/mocks"
	"github.com/dtroode/simple-twitter-server/internal/model"
	"github.com/dtroode/simple-twitter-server/internal/password"
	"github.com/dtroode/simple-twitter-server/internal/testutil"
	"github.com/dtroode/simple-twitter-server/internal/token"
)

func storedUser(role model.Role) model.User {
	return model.User{
		ID:           1,
		Account:      "user1",
		Name:         "User One",
		Email:        "user1@example.com",
		PasswordHash: "stored-hash",
		Role:         role,
	}
}

func TestAuth_SignIn_Success(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	hasher := mocks.NewHasher(t)
	tokens := mocks.NewTokenManager(t)

	user := storedUser(model.RoleUser)
	users.On("GetByAccount", mock.Anything, "user1").Return(user, nil)
	hasher.On("Verify", "titaner", "stored-hash").Return(true, nil)
	tokens.On("Issue", user.Identity()).Return("signed", nil)

	a := NewAuth(users, hasher, tokens, testutil.MakeNoopLogger())
	res, err := a.SignIn(ctx, "user1", "titaner", model.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "signed", res.Token)
	assert.Equal(t, user.Identity(), res.User)
}

func TestAuth_SignIn_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(users *mocks.UserStore, hasher *mocks.Hasher)
		role  model.Role
	}{
		{
			name: "unknown account",
			setup: func(users *mocks.UserStore, hasher *mocks.Hasher) {
				users.On("GetByAccount", mock.Anything, "user1").Return(model.User{}, model.ErrNotFound)
				hasher.On("Hash", dummyPassword).Return("dummy-hash", nil).Once()
				hasher.On("Verify", "titaner", "dummy-hash").Return(false, nil)
			},
			role: model.RoleUser,
		},
		{
			name: "wrong password",
			setup: func(users *mocks.UserStore, hasher *mocks.Hasher) {
				users.On("GetByAccount", mock.Anything, "user1").Return(storedUser(model.RoleUser), nil)
				hasher.On("Verify", "titaner", "stored-hash").Return(false, nil)
			},
			role: model.RoleUser,
		},
		{
			name: "user on admin endpoint",
			setup: func(users *mocks.UserStore, hasher *mocks.Hasher) {
				users.On("GetByAccount", mock.Anything, "user1").Return(storedUser(model.RoleUser), nil)
				hasher.On("Verify", "titaner", "stored-hash").Return(true, nil)
			},
			role: model.RoleAdmin,
		},
		{
			name: "admin on user endpoint",
			setup: func(users *mocks.UserStore, hasher *mocks.Hasher) {
				users.On("GetByAccount", mock.Anything, "user1").Return(storedUser(model.RoleAdmin), nil)
				hasher.On("Verify", "titaner", "stored-hash").Return(true, nil)
			},
			role: model.RoleUser,
		},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewUserStore(t)
			hasher := mocks.NewHasher(t)
			tokens := mocks.NewTokenManager(t)
			tt.setup(users, hasher)

			a := NewAuth(users, hasher, tokens, testutil.MakeNoopLogger())
			res, err := a.SignIn(context.Background(), "user1", "titaner", tt.role)
			require.ErrorIs(t, err, model.ErrInvalidCredentials)
			assert.Empty(t, res.Token)
			messages = append(messages, err.Error())
			tokens.AssertNotCalled(t, "Issue", mock.Anything)
		})
	}

	for _, m := range messages {
		assert.Equal(t, model.MsgInvalidCredentials, m)
	}
}

func TestAuth_SignIn_EmptyFields(t *testing.T) {
	a := NewAuth(mocks.NewUserStore(t), mocks.NewHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())

	for _, in := range [][2]string{{"", "pw"}, {"user1", ""}, {"", ""}} {
		_, err := a.SignIn(context.Background(), in[0], in[1], model.RoleUser)
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, model.MsgEmptyFields, verr.Message)
	}
}

func TestAuth_SignIn_StoreError(t *testing.T) {
	users := mocks.NewUserStore(t)
	users.On("GetByAccount", mock.Anything, "user1").Return(model.User{}, errors.New("db down"))

	a := NewAuth(users, mocks.NewHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())
	_, err := a.SignIn(context.Background(), "user1", "titaner", model.RoleUser)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_SignIn_CorruptHash(t *testing.T) {
	users := mocks.NewUserStore(t)
	hasher := mocks.NewHasher(t)
	users.On("GetByAccount", mock.Anything, "user1").Return(storedUser(model.RoleUser), nil)
	hasher.On("Verify", "titaner", "stored-hash").Return(false, errors.New("bad hash"))

	a := NewAuth(users, hasher, mocks.NewTokenManager(t), testutil.MakeNoopLogger())
	res, err := a.SignIn(context.Background(), "user1", "titaner", model.RoleUser)
	require.Error(t, err)
	assert.Empty(t, res.Token)
}

// The dummy hash must be a well-formed bcrypt hash at the configured cost,
// otherwise unknown accounts are answered faster than wrong passwords.
func TestAuth_DummyHash(t *testing.T) {
	t.Run("follows configured cost", func(t *testing.T) {
		const cost = bcrypt.MinCost + 1
		a := NewAuth(mocks.NewUserStore(t), password.NewBcrypt(cost), mocks.NewTokenManager(t), testutil.MakeNoopLogger())

		got, err := bcrypt.Cost([]byte(a.dummyHash()))
		require.NoError(t, err)
		assert.Equal(t, cost, got)
	})

	t.Run("computed once", func(t *testing.T) {
		hasher := mocks.NewHasher(t)
		hasher.On("Hash", dummyPassword).Return("dummy-hash", nil).Once()

		a := NewAuth(mocks.NewUserStore(t), hasher, mocks.NewTokenManager(t), testutil.MakeNoopLogger())
		assert.Equal(t, "dummy-hash", a.dummyHash())
		assert.Equal(t, "dummy-hash", a.dummyHash())
	})

	t.Run("falls back when hashing fails", func(t *testing.T) {
		hasher := mocks.NewHasher(t)
		hasher.On("Hash", dummyPassword).Return("", errors.New("boom"))

		a := NewAuth(mocks.NewUserStore(t), hasher, mocks.NewTokenManager(t), testutil.MakeNoopLogger())
		assert.Equal(t, fallbackDummyHash, a.dummyHash())

		ok, err := password.NewBcrypt(bcrypt.MinCost).Verify("anything", fallbackDummyHash)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

// A password longer than bcrypt reads can never match a stored hash, and
// must not reach the store or the hasher.
func TestAuth_SignIn_PasswordTooLong(t *testing.T) {
	users := mocks.NewUserStore(t)
	hasher := mocks.NewHasher(t)
	tokens := mocks.NewTokenManager(t)

	a := NewAuth(users, hasher, tokens, testutil.MakeNoopLogger())
	res, err := a.SignIn(context.Background(), "user1", strings.Repeat("a", password.MaxLength+1), model.RoleUser)
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	assert.Empty(t, res.Token)
	users.AssertNotCalled(t, "GetByAccount", mock.Anything, mock.Anything)
	hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

// Two passwords that agree on the first 72 bytes are distinct credentials.
func TestAuth_SignIn_SharedPrefix(t *testing.T) {
	hasher := password.NewBcrypt(bcrypt.MinCost)
	prefix := strings.Repeat("p", password.MaxLength)
	hash, err := hasher.Hash(prefix)
	require.NoError(t, err)

	users := mocks.NewUserStore(t)
	user := storedUser(model.RoleUser)
	user.PasswordHash = hash
	users.On("GetByAccount", mock.Anything, "user1").Return(user, nil).Once()

	a := NewAuth(users, hasher, token.NewJWT("secret", time.Hour), testutil.MakeNoopLogger())

	_, err = a.SignIn(context.Background(), "user1", prefix+"x", model.RoleUser)
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	res, err := a.SignIn(context.Background(), "user1", prefix, model.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestAuth_SignIn_RealComponents(t *testing.T) {
	hasher := password.NewBcrypt(bcrypt.MinCost)
	hash, err := hasher.Hash("titaner")
	require.NoError(t, err)

	users := mocks.NewUserStore(t)
	user := storedUser(model.RoleAdmin)
	user.PasswordHash = hash
	users.On("GetByAccount", mock.Anything, "root").Return(user, nil)

	jwt := token.NewJWT("secret", time.Hour)
	a := NewAuth(users, hasher, jwt, testutil.MakeNoopLogger())

	res, err := a.SignIn(context.Background(), "root", "titaner", model.RoleAdmin)
	require.NoError(t, err)

	identity, err := a.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, identity.Role)
	assert.NoError(t, model.RequireRole(identity, model.RoleAdmin))
}

func TestAuth_SignUp(t *testing.T) {
	valid := model.SignUpParams{
		Account:       "user2",
		Name:          "User Two",
		Email:         "user2@example.com",
		Password:      "titaner",
		CheckPassword: "titaner",
	}

	t.Run("success", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		hasher := mocks.NewHasher(t)
		users.On("GetByAccount", mock.Anything, "user2").Return(model.User{}, model.ErrNotFound)
		users.On("GetByEmail", mock.Anything, "user2@example.com").Return(model.User{}, model.ErrNotFound)
		hasher.On("Hash", "titaner").Return("hashed", nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.Account == "user2" && u.PasswordHash == "hashed" && u.Role == model.RoleUser
		})).Return(model.User{ID: 2, Account: "user2", Name: "User Two", Email: "user2@example.com", PasswordHash: "hashed", Role: model.RoleUser}, nil)

		a := NewAuth(users, hasher, mocks.NewTokenManager(t), testutil.MakeNoopLogger())
		identity, err := a.SignUp(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, int64(2), identity.ID)
		assert.Equal(t, model.RoleUser, identity.Role)
	})

	t.Run("account taken creates nothing", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		users.On("GetByAccount", mock.Anything, "user2").Return(model.User{ID: 9}, nil)
		users.On("GetByEmail", mock.Anything, "user2@example.com").Return(model.User{}, model.ErrNotFound)

		a := NewAuth(users, mocks.NewHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())
		_, err := a.SignUp(context.Background(), valid)
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, model.MsgAccountTaken, verr.Message)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		users.On("GetByAccount", mock.Anything, "user2").Return(model.User{}, model.ErrNotFound)
		users.On("GetByEmail", mock.Anything, "user2@example.com").Return(model.User{ID: 9}, nil)

		a := NewAuth(users, mocks.NewHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())
		_, err := a.SignUp(context.Background(), valid)
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, model.MsgEmailTaken, verr.Message)
	})

	t.Run("lost race to unique constraint", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		hasher := mocks.NewHasher(t)
		users.On("GetByAccount", mock.Anything, "user2").Return(model.User{}, model.ErrNotFound)
		users.On("GetByEmail", mock.Anything, "user2@example.com").Return(model.User{}, model.ErrNotFound)
		hasher.On("Hash", "titaner").Return("hashed", nil)
		users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrAccountTaken)

		a := NewAuth(users, hasher, mocks.NewTokenManager(t), testutil.MakeNoopLogger())
		_, err := a.SignUp(context.Background(), valid)
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, model.MsgAccountTaken, verr.Message)
	})

	t.Run("lookup fails", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		users.On("GetByAccount", mock.Anything, "user2").Return(model.User{}, errors.New("db down"))
		users.On("GetByEmail", mock.Anything, "user2@example.com").Return(model.User{}, model.ErrNotFound).Maybe()

		a := NewAuth(users, mocks.NewHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())
		_, err := a.SignUp(context.Background(), valid)
		require.Error(t, err)
		var verr *model.ValidationError
		assert.False(t, errors.As(err, &verr))
	})

	longName := make([]rune, 51)
	for i := range longName {
		longName[i] = '名'
	}

	invalid := []struct {
		name    string
		mutate  func(p *model.SignUpParams)
		message string
	}{
		{name: "empty account", mutate: func(p *model.SignUpParams) { p.Account = "" }, message: model.MsgEmptyFields},
		{name: "blank email", mutate: func(p *model.SignUpParams) { p.Email = "  " }, message: model.MsgEmptyFields},
		{name: "empty check password", mutate: func(p *model.SignUpParams) { p.CheckPassword = "" }, message: model.MsgEmptyFields},
		{name: "password mismatch", mutate: func(p *model.SignUpParams) { p.CheckPassword = "other" }, message: model.MsgPasswordMismatch},
		{name: "name too long", mutate: func(p *model.SignUpParams) { p.Name = string(longName) }, message: model.MsgNameTooLong},
		{name: "account too long", mutate: func(p *model.SignUpParams) { p.Account = strings.Repeat("帳", model.MaxAccountLength+1) }, message: model.MsgAccountTooLong},
		{name: "email too long", mutate: func(p *model.SignUpParams) { p.Email = strings.Repeat("e", model.MaxEmailLength-len("@example.com")+1) + "@example.com" }, message: model.MsgEmailTooLong},
		{name: "password over 72 bytes", mutate: func(p *model.SignUpParams) {
			p.Password = strings.Repeat("a", password.MaxLength+1)
			p.CheckPassword = p.Password
		}, message: model.MsgPasswordTooLong},
		{name: "multibyte password over 72 bytes", mutate: func(p *model.SignUpParams) {
			p.Password = strings.Repeat("密", 25)
			p.CheckPassword = p.Password
		}, message: model.MsgPasswordTooLong},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			a := NewAuth(mocks.NewUserStore(t), mocks.NewHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())
			_, err := a.SignUp(context.Background(), p)
			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestAuth_Authenticate(t *testing.T) {
	tokens := mocks.NewTokenManager(t)
	identity := storedUser(model.RoleUser).Identity()
	tokens.On("Parse", "good").Return(identity, nil)
	tokens.On("Parse", "bad").Return(model.Identity{}, errors.New("signature is invalid"))

	a := NewAuth(mocks.NewUserStore(t), mocks.NewHasher(t), tokens, testutil.MakeNoopLogger())

	got, err := a.Authenticate(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	_, err = a.Authenticate(context.Background(), "bad")
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = a.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, model.ErrMissingToken)
}

func TestAuth_EnsureAdmin(t *testing.T) {
	t.Run("creates missing admin", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		hasher := mocks.NewHasher(t)
		users.On("GetByAccount", mock.Anything, "root").Return(model.User{}, model.ErrNotFound)
		hasher.On("Hash", "12345678").Return("hashed", nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.Role == model.RoleAdmin && u.Email == "root@example.com"
		})).Return(model.User{ID: 1, Role: model.RoleAdmin}, nil)

		a := NewAuth(users, hasher, mocks.NewTokenManager(t), testutil.MakeNoopLogger())
		assert.NoError(t, a.EnsureAdmin(context.Background(), "root", "root@example.com", "12345678"))
	})

	t.Run("keeps existing admin", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		users.On("GetByAccount", mock.Anything, "root").Return(model.User{ID: 1, Role: model.RoleAdmin}, nil)

		a := NewAuth(users, mocks.NewHasher(t), mocks.NewTokenManager(t), testutil.MakeNoopLogger())
		assert.NoError(t, a.EnsureAdmin(context.Background(), "root", "root@example.com", "12345678"))
	})
}
