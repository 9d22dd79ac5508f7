package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the longest password in bytes that bcrypt reads in full.
// Longer input would be truncated, so it is refused instead.
const MaxLength = 72

// ErrTooLong is returned by Hash for passwords longer than MaxLength bytes.
var ErrTooLong = errors.New("password exceeds 72 bytes")

// Hasher hashes and verifies plaintext passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

var _ Hasher = (*Bcrypt)(nil)

// Bcrypt implements Hasher with a fixed cost factor.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher. Costs outside the bcrypt range fall back
// to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns a salted bcrypt hash of password.
func (b *Bcrypt) Hash(password string) (string, error) {
	if len(password) > MaxLength {
		return "", ErrTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A mismatch is not an error;
// an error is returned only when hash itself cannot be parsed. Passwords
// longer than MaxLength never match.
func (b *Bcrypt) Verify(password, hash string) (bool, error) {
	if len(password) > MaxLength {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify password: %w", err)
}
