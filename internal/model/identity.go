package model

import "time"

// Identity is the authenticated principal carried inside an access token.
// It mirrors the user row at issuance time and never holds credentials.
type Identity struct {
	ID           int64     `json:"id"`
	Account      string    `json:"account"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar"`
	Cover        string    `json:"cover"`
	Introduction string    `json:"introduction"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RequireRole allows the identity only when it holds exactly the given role.
func RequireRole(identity Identity, role Role) error {
	if identity.Role != role {
		return ErrPermissionDenied
	}
	return nil
}
