// Package resettokens declares the repository contract for single-use
// password-reset tokens.
package resettokens

import (
	"context"
	"time"
)

// Repository defines operations for issuing, consuming, and purging
// password-reset tokens.
type Repository interface {
	// Create stores a new reset token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Consume deletes the row matching token AND userID AND not-yet-expired.
	// Exactly one affected row means success; anything else returns
	// common.ErrorNotFound. Run it inside the same transaction as the
	// password update it gates.
	Consume(ctx context.Context, token string, userID string) error

	// DeleteAllForUser purges every reset token owned by userID. Called
	// after a failed completion attempt.
	DeleteAllForUser(ctx context.Context, userID string) error
}
