// Package activationtokens provides a PostgreSQL-backed repository for
// single-use account-activation tokens.
package activationtokens

import (
	"context"
	"fmt"
	"time"

	"github.com/mpetrovs/cinepass/internal/common"
	"github.com/mpetrovs/cinepass/internal/dbx"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new activation token for userID with an expiry time of
// now+validity (UTC).
func (r *PostgresRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	query := `
		INSERT INTO activation_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, token, time.Now().UTC().Add(validity)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Consume deletes the unexpired token row owned by userID. Zero affected
// rows maps to common.ErrorNotFound: under concurrency only one caller sees
// the row disappear.
func (r *PostgresRepository) Consume(ctx context.Context, token string, userID string) error {
	query := `
		DELETE FROM activation_tokens
		WHERE token = $1 AND user_id = $2 AND expires_at > $3
	`
	res, err := r.db.ExecContext(ctx, query, token, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected != 1 {
		return common.ErrorNotFound
	}
	return nil
}
