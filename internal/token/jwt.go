package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/simple-twitter-server/internal/model"
)

// DefaultTTL is the lifetime of an access token.
const DefaultTTL = 30 * 24 * time.Hour

// Claims represents JWT claims carrying the user's public profile.
type Claims struct {
	jwt.RegisteredClaims
	model.Identity
}

// JWT implements TokenManager backed by symmetric HMAC.
// It is immutable after construction.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a new JWT token manager with the provided secret key and token lifetime.
// A non-positive ttl falls back to DefaultTTL.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

// Issue signs the identity into a token that expires after the configured TTL.
func (j *JWT) Issue(identity model.Identity) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Identity: identity,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Parse validates signature, expiry and payload and returns the embedded identity.
func (j *JWT) Parse(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return model.Identity{}, fmt.Errorf("access token is invalid")
	}
	if claims.Identity.ID <= 0 {
		return model.Identity{}, fmt.Errorf("access token has no user id")
	}
	if claims.Subject != strconv.FormatInt(claims.Identity.ID, 10) {
		return model.Identity{}, fmt.Errorf("subject mismatch: %s", claims.Subject)
	}
	if !claims.Role.Valid() {
		return model.Identity{}, fmt.Errorf("unknown role: %q", claims.Role)
	}

	return claims.Identity, nil
}
