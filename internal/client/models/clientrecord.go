package models

import "time"

// ClientRecord is one row of the admin roster. Username is derived from the
// email local part because the roster endpoint does not supply a display
// name; it is a display fallback, not an identity fact.
type ClientRecord struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          Role      `json:"role"`
	IsBlacklisted bool      `json:"isBlacklisted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
