// Package users declares the repository contract for account rows.
package users

import (
	"context"

	"github.com/mpetrovs/cinepass/internal/server/models"
)

// Repository defines persistence operations on accounts.
type Repository interface {
	// Create inserts a new account row. A duplicate email returns
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the account with exactly this email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Activate flips is_active to true for the given account.
	Activate(ctx context.Context, userID string) error

	// UpdatePassword replaces the stored password digest.
	UpdatePassword(ctx context.Context, userID string, hashedPassword string) error
}
