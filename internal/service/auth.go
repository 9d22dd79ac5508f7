package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/dtroode/simple-twitter-server/internal/logger"
	"github.com/dtroode/simple-twitter-server/internal/model"
	"github.com/dtroode/simple-twitter-server/internal/password"
)

// Unknown accounts are compared against a hash of dummyPassword so that they
// take as long as a wrong password. The hash is made with the configured
// hasher on first use; fallbackDummyHash is used only if hashing fails.
const (
	dummyPassword     = "simple-twitter-dummy-password"
	fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

type Auth struct {
	userStore    model.UserStore
	hasher       password.Hasher
	tokenManager model.TokenManager
	logger       *logger.Logger

	dummyOnce sync.Once
	dummy     string
}

func NewAuth(
	userStore model.UserStore,
	hasher password.Hasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// SignIn checks the credentials against the stored hash and issues a token.
// Unknown account, wrong password and wrong role are reported identically.
func (a *Auth) SignIn(ctx context.Context, account, plaintext string, role model.Role) (model.SessionResult, error) {
	if account == "" || plaintext == "" {
		return model.SessionResult{}, model.NewValidationError(model.MsgEmptyFields)
	}

	// Such a password can never have been stored.
	if len(plaintext) > password.MaxLength {
		a.logger.Info("Auth service: sign-in rejected",
			"account", account)
		return model.SessionResult{}, model.ErrInvalidCredentials
	}

	a.logger.Debug("Auth service: starting sign-in",
		"account", account,
		"role", role)

	user, err := a.userStore.GetByAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			a.logger.Error("Auth service: failed to get user by account",
				"account", account,
				"error", err.Error())
			return model.SessionResult{}, fmt.Errorf("failed to get user by account: %w", err)
		}

		// Result is ignored; the comparison only equalizes timing.
		_, _ = a.hasher.Verify(plaintext, a.dummyHash())
		a.logger.Info("Auth service: sign-in rejected",
			"account", account)
		return model.SessionResult{}, model.ErrInvalidCredentials
	}

	ok, err := a.hasher.Verify(plaintext, user.PasswordHash)
	if err != nil {
		a.logger.Error("Auth service: stored password hash is unreadable",
			"user_id", user.ID,
			"error", err.Error())
		return model.SessionResult{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok || user.Role != role {
		a.logger.Info("Auth service: sign-in rejected",
			"account", account)
		return model.SessionResult{}, model.ErrInvalidCredentials
	}

	identity := user.Identity()
	token, err := a.tokenManager.Issue(identity)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.SessionResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: sign-in completed",
		"user_id", user.ID,
		"role", user.Role)

	return model.SessionResult{
		Token: token,
		User:  identity,
	}, nil
}

// SignUp registers an ordinary user account.
func (a *Auth) SignUp(ctx context.Context, params model.SignUpParams) (model.Identity, error) {
	if err := validateAccountFields(params.Account, params.Name, params.Email, params.Password, params.CheckPassword); err != nil {
		return model.Identity{}, err
	}

	a.logger.Debug("Auth service: starting sign-up",
		"account", params.Account)

	if err := checkAccountAvailable(ctx, a.userStore, params.Account, params.Email, 0); err != nil {
		if _, ok := err.(*model.ValidationError); !ok {
			a.logger.Error("Auth service: failed to check account availability",
				"account", params.Account,
				"error", err.Error())
		}
		return model.Identity{}, err
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"account", params.Account,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Account:      params.Account,
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if err != nil {
		if verr := takenError(err); verr != nil {
			return model.Identity{}, verr
		}
		a.logger.Error("Auth service: failed to create user",
			"account", params.Account,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: sign-up completed",
		"user_id", user.ID)

	return user.Identity(), nil
}

// dummyHash returns the timing-equalization hash, creating it at the
// hasher's configured cost on first call.
func (a *Auth) dummyHash() string {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Error("Auth service: failed to prepare dummy hash",
				"error", err.Error())
			hash = fallbackDummyHash
		}
		a.dummy = hash
	})
	return a.dummy
}

// Authenticate verifies an access token and returns the identity it carries.
func (a *Auth) Authenticate(_ context.Context, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, model.ErrMissingToken
	}

	identity, err := a.tokenManager.Parse(token)
	if err != nil {
		a.logger.Debug("Auth service: token rejected",
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	return identity, nil
}

// EnsureAdmin creates the admin account unless an account with that name
// already exists.
func (a *Auth) EnsureAdmin(ctx context.Context, account, email, plaintext string) error {
	_, err := a.userStore.GetByAccount(ctx, account)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get admin account: %w", err)
	}

	hash, err := a.hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Account:      account,
		Name:         account,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	a.logger.Info("Auth service: admin account created",
		"user_id", user.ID)

	return nil
}

func validateAccountFields(account, name, email, plaintext, check string) error {
	for _, v := range []string{account, name, email, plaintext, check} {
		if strings.TrimSpace(v) == "" {
			return model.NewValidationError(model.MsgEmptyFields)
		}
	}
	if plaintext != check {
		return model.NewValidationError(model.MsgPasswordMismatch)
	}
	if utf8.RuneCountInString(name) > model.MaxNameLength {
		return model.NewValidationError(model.MsgNameTooLong)
	}
	if utf8.RuneCountInString(account) > model.MaxAccountLength {
		return model.NewValidationError(model.MsgAccountTooLong)
	}
	if utf8.RuneCountInString(email) > model.MaxEmailLength {
		return model.NewValidationError(model.MsgEmailTooLong)
	}
	// bcrypt limit, counted in bytes.
	if len(plaintext) > password.MaxLength {
		return model.NewValidationError(model.MsgPasswordTooLong)
	}
	return nil
}

// checkAccountAvailable looks up account and email concurrently. Rows owned by
// selfID are not considered taken.
func checkAccountAvailable(ctx context.Context, store model.UserStore, account, email string, selfID int64) error {
	var accountTaken, emailTaken bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := store.GetByAccount(gctx, account)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get user by account: %w", err)
		}
		accountTaken = u.ID != selfID
		return nil
	})
	g.Go(func() error {
		u, err := store.GetByEmail(gctx, email)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get user by email: %w", err)
		}
		emailTaken = u.ID != selfID
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if accountTaken {
		return model.NewValidationError(model.MsgAccountTaken)
	}
	if emailTaken {
		return model.NewValidationError(model.MsgEmailTaken)
	}
	return nil
}

// takenError converts a unique violation reported by the store into the
// matching client message, or returns nil.
func takenError(err error) error {
	switch {
	case errors.Is(err, model.ErrAccountTaken):
		return model.NewValidationError(model.MsgAccountTaken)
	case errors.Is(err, model.ErrEmailTaken):
		return model.NewValidationError(model.MsgEmailTaken)
	default:
		return nil
	}
}
