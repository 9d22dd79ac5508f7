package model

// TokenManager issues and verifies stateless access tokens.
type TokenManager interface {
	Issue(identity Identity) (string, error)
	Parse(token string) (Identity, error)
}
