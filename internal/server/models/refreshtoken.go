package models

import "time"

// RefreshToken is a persisted signed token row. Unlike access tokens, refresh
// tokens are stored so they can be revoked independently of their signature
// validity. A row stays valid for repeated exchanges until it expires or is
// deleted.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
