package models

import "time"

// Role is the access level the backend assigns to an authenticated user.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// Identity is the authenticated user's profile as the client knows it.
// It is owned by the auth service and only ever replaced wholesale;
// no caller mutates individual fields.
type Identity struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          Role      `json:"role"`
	IsBlacklisted bool      `json:"isBlacklisted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
