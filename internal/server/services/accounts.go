// Package services contains server-side business logic. This file implements
// AccountService, which owns the account state machine and coordinates
// registration, activation, login, token refresh, and password-reset flows.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrovs/cinepass/internal/common"
	"github.com/mpetrovs/cinepass/internal/dbx"
	"github.com/mpetrovs/cinepass/internal/server/auth"
	"github.com/mpetrovs/cinepass/internal/server/config"
	"github.com/mpetrovs/cinepass/internal/server/models"
	"github.com/mpetrovs/cinepass/internal/server/passwords"
	"github.com/mpetrovs/cinepass/internal/server/repositories/repomanager"
)

// opaqueTokenBytes is the entropy of single-use tokens (activation, reset);
// the resulting hex string is twice this length.
const opaqueTokenBytes = 32

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AccountService provides the account lifecycle operations:
//   - Register: create an inactive account plus its activation token
//   - Activate: consume an activation token exactly once
//   - Login: verify credentials and mint tokens
//   - RefreshAccess: exchange a persisted refresh token for a new access token
//   - RequestPasswordReset / CompletePasswordReset: single-use reset flow
type AccountService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	tokens        *auth.Manager
	hasher        passwords.Hasher
	activationTTL time.Duration
	resetTTL      time.Duration
	refreshTTL    time.Duration
	singleSession bool
}

// NewAccountService constructs an AccountService using repositories,
// the signed-token codec, the password hasher, and server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.Manager, hasher passwords.Hasher, cfg *config.Config) *AccountService {
	return &AccountService{
		db:            db,
		repomanager:   m,
		tokens:        tokens,
		hasher:        hasher,
		activationTTL: cfg.ActivationTokenValidityDuration,
		resetTTL:      cfg.ResetTokenValidityDuration,
		refreshTTL:    cfg.RefreshTokenValidityDuration,
		singleSession: cfg.SingleSessionPerUser,
	}
}

// Register creates an inactive account and its pending activation token in
// one transaction. A duplicate email returns common.ErrorAlreadyExists.
// The activation token is never returned to the caller: delivery is an
// external concern.
func (s *AccountService) Register(ctx context.Context, email string, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %v", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	activationToken, err := s.generateOpaqueToken()
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: digest,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.repomanager.ActivationTokens(tx).Create(ctx, user.ID, activationToken, s.activationTTL)
	})
	if err != nil {
		// the unique constraint backs up the pre-check under concurrency
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

// Activate consumes the presented activation token and flips the account to
// active in one transaction. An already-active account returns
// common.ErrorAlreadyActivated; every other failure (unknown email, wrong
// owner, expired or consumed token) collapses into
// common.ErrorInvalidOrExpiredToken.
func (s *AccountService) Activate(ctx context.Context, email string, token string) error {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorInvalidOrExpiredToken
		}
		return fmt.Errorf("error searching user: %v", err)
	}

	if user.IsActive {
		return common.ErrorAlreadyActivated
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.ActivationTokens(tx).Consume(ctx, token, user.ID); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Activate(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorInvalidOrExpiredToken
		}
		return fmt.Errorf("error activating user: %v", err)
	}

	return nil
}

// Login verifies credentials and activation state, persists a refresh token,
// and returns a TokenPair. Unknown email and wrong password both map to
// common.ErrorInvalidCredentials; an inactive account maps to
// common.ErrorNotActivated. No access token is issued unless the refresh
// token row is durable.
func (s *AccountService) Login(ctx context.Context, email string, password string) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return nil, common.ErrorInvalidCredentials
	}

	if !user.IsActive {
		return nil, common.ErrorNotActivated
	}

	refreshToken, err := s.tokens.CreateRefreshToken(user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.RefreshTokens(tx)
		if s.singleSession {
			if err := repo.DeleteAllForUser(ctx, user.ID); err != nil {
				return err
			}
		}
		return repo.Create(ctx, user.ID, refreshToken, s.refreshTTL)
	})
	if err != nil {
		return nil, common.ErrorInternal
	}

	accessToken, err := s.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshAccess exchanges a refresh token for a new access token. The token
// must both carry a valid signature and match a non-expired persisted row:
// signature validity alone is not sufficient, revocation is checked against
// storage. The refresh token is not rotated.
func (s *AccountService) RefreshAccess(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.DecodeRefreshToken(refreshToken)
	if err != nil {
		return "", common.ErrRefreshTokenExpired
	}

	record, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrRefreshTokenNotFound
		}
		return "", fmt.Errorf("error searching refresh token: %v", err)
	}

	if record.Expires.Before(time.Now().UTC()) {
		return "", common.ErrRefreshTokenNotFound
	}

	if claims.UserID != record.UserID {
		return "", common.ErrorNotFound
	}

	accessToken, err := s.tokens.CreateAccessToken(record.UserID)
	if err != nil {
		return "", common.ErrorInternal
	}

	return accessToken, nil
}

// Logout revokes the presented refresh token so it can no longer be
// exchanged, regardless of its remaining signature validity. Revoking a
// token that is already gone is a no-op.
func (s *AccountService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.tokens.DecodeRefreshToken(refreshToken); err != nil {
		return common.ErrRefreshTokenExpired
	}

	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %v", err)
	}

	return nil
}

// RequestPasswordReset issues a reset token if, and only if, an active
// account owns the email. It always returns nil for absent or inactive
// accounts so the response cannot reveal account existence.
func (s *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return fmt.Errorf("error searching user: %v", err)
	}

	if !user.IsActive {
		return nil
	}

	token, err := s.generateOpaqueToken()
	if err != nil {
		return common.ErrorInternal
	}

	if err := s.repomanager.ResetTokens(s.db).Create(ctx, user.ID, token, s.resetTTL); err != nil {
		return fmt.Errorf("error creating reset token: %v", err)
	}

	return nil
}

// CompletePasswordReset consumes the presented reset token and updates the
// password digest in one transaction. On an invalid or expired token, every
// reset token the account owns is purged before the generic error is
// returned, so a leaked token cannot be retried against the others. If the
// purge itself fails, the storage error is returned instead of the generic
// one.
func (s *AccountService) CompletePasswordReset(ctx context.Context, email string, token string, newPassword string) error {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorInvalidOrExpiredToken
		}
		return fmt.Errorf("error searching user: %v", err)
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.ResetTokens(tx).Consume(ctx, token, user.ID); err != nil {
			return err
		}
		return s.repomanager.Users(tx).UpdatePassword(ctx, user.ID, digest)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// runs outside the rolled-back transaction
			if purgeErr := s.repomanager.ResetTokens(s.db).DeleteAllForUser(ctx, user.ID); purgeErr != nil {
				return fmt.Errorf("error purging reset tokens: %v", purgeErr)
			}
			return common.ErrorInvalidOrExpiredToken
		}
		return fmt.Errorf("error resetting password: %v", err)
	}

	return nil
}

func (s *AccountService) generateOpaqueToken() (string, error) {
	return common.MakeRandHexString(opaqueTokenBytes)
}
