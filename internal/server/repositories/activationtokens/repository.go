// Package activationtokens declares the repository contract for single-use
// account-activation tokens.
package activationtokens

import (
	"context"
	"time"
)

// Repository defines operations for issuing and consuming activation tokens.
type Repository interface {
	// Create stores a new activation token for userID with an expiry of
	// now+validity. A user has at most one pending token.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Consume deletes the row matching token AND userID AND not-yet-expired.
	// It succeeds only if exactly one row was removed; anything else returns
	// common.ErrorNotFound. Run it inside the same transaction as the state
	// change it gates: the delete doubles as the race arbiter, so of two
	// concurrent consumers only one can observe an affected row.
	Consume(ctx context.Context, token string, userID string) error
}
