package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mpetrovs/cinepass/internal/common"
)

func newTestManager() *Manager {
	return NewManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestManager()
	userID := "user-123"

	tok, err := m.CreateAccessToken(userID)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}

	claims, err := m.DecodeAccessToken(tok)
	if err != nil {
		t.Fatalf("DecodeAccessToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("expected issued-at and expires-at to be set")
	}
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	tok, err := m.CreateRefreshToken("u1")
	if err != nil {
		t.Fatalf("CreateRefreshToken error: %v", err)
	}

	claims, err := m.DecodeRefreshToken(tok)
	if err != nil {
		t.Fatalf("DecodeRefreshToken error: %v", err)
	}
	if claims.UserID != "u1" {
		t.Fatalf("userID mismatch: got %q", claims.UserID)
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("access-secret", "refresh-secret", -1*time.Second, -1*time.Second)

	tok, err := m.CreateAccessToken("u1")
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}

	_, err = m.DecodeAccessToken(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestDecode_CrossSecretRejected(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	// an access token must never verify as a refresh token, and vice versa
	accessTok, err := m.CreateAccessToken("u1")
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}
	if _, err := m.DecodeRefreshToken(accessTok); !errors.Is(err, common.ErrTokenSignatureInvalid) {
		t.Fatalf("expected signature error decoding access token as refresh, got %v", err)
	}

	refreshTok, err := m.CreateRefreshToken("u1")
	if err != nil {
		t.Fatalf("CreateRefreshToken error: %v", err)
	}
	if _, err := m.DecodeAccessToken(refreshTok); !errors.Is(err, common.ErrTokenSignatureInvalid) {
		t.Fatalf("expected signature error decoding refresh token as access, got %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	_, err := m.DecodeAccessToken("not.a.jwt")
	if !errors.Is(err, common.ErrTokenMalformed) {
		t.Fatalf("expected common.ErrTokenMalformed, got %v", err)
	}
}

func TestCreate_RepeatedCallsDiffer(t *testing.T) {
	t.Parallel()

	m := newTestManager()

	t1, err := m.CreateAccessToken("u1")
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}
	time.Sleep(1100 * time.Millisecond) // issued-at has second precision
	t2, err := m.CreateAccessToken("u1")
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("expected distinct tokens for repeated mints")
	}
}
