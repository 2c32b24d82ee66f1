// Package auth implements the signed-token codec: minting and decoding of
// access and refresh JWTs. Access and refresh tokens are signed with distinct
// secrets so a token of one kind can never pass verification as the other.
// The codec is pure: no I/O, safe for concurrent use.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mpetrovs/cinepass/internal/common"
)

// Claims is the payload embedded in signed tokens: the registered claim set
// (issued-at, expires-at) plus the subject account identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// Manager mints and verifies HS256-signed access and refresh tokens.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewManager constructs a Manager. The access and refresh secrets must be
// distinct; lifetimes are configuration-controlled.
func NewManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// CreateAccessToken mints a short-lived access token for userID.
func (m *Manager) CreateAccessToken(userID string) (string, error) {
	return generateToken(userID, m.accessSecret, m.accessTTL)
}

// CreateRefreshToken mints a long-lived refresh token for userID, signed
// with the refresh secret.
func (m *Manager) CreateRefreshToken(userID string) (string, error) {
	return generateToken(userID, m.refreshSecret, m.refreshTTL)
}

// DecodeAccessToken verifies signature and expiry against the access secret.
func (m *Manager) DecodeAccessToken(tokenString string) (*Claims, error) {
	return decodeToken(tokenString, m.accessSecret)
}

// DecodeRefreshToken verifies signature and expiry against the refresh secret.
func (m *Manager) DecodeRefreshToken(tokenString string) (*Claims, error) {
	return decodeToken(tokenString, m.refreshSecret)
}

func generateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// decodeToken maps parser failures onto the distinguishable codec sentinels:
// expiry, malformed input, and signature mismatch each surface differently.
func decodeToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignatureInvalid
		default:
			return nil, fmt.Errorf("error parsing token: %w", err)
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenSignatureInvalid
	}

	return claims, nil
}
