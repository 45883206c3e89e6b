package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestFromTokenVerified(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := signToken(t, testSecret, &Claims{
		Email: "learner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	s, err := FromToken(token, testSecret)
	if err != nil {
		t.Fatalf("FromToken failed: %v", err)
	}
	if s.UserID != 42 {
		t.Errorf("expected user id 42, got %d", s.UserID)
	}
	if s.Email != "learner@example.com" {
		t.Errorf("unexpected email %q", s.Email)
	}
	if !s.ExpiresAt.Equal(exp.Truncate(time.Second)) {
		t.Errorf("expected expiry %v, got %v", exp.Truncate(time.Second), s.ExpiresAt)
	}
	if !s.Valid(time.Now()) {
		t.Error("session should be valid before expiry")
	}
}

func TestFromTokenWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	})
	if _, err := FromToken(token, testSecret); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestFromTokenExpired(t *testing.T) {
	token := signToken(t, testSecret, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	if _, err := FromToken(token, testSecret); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestFromTokenUnverified(t *testing.T) {
	// With no secret configured the claims are read without signature
	// verification, but expiry is still enforced locally.
	token := signToken(t, "whatever", &Claims{
		Email: "learner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	s, err := FromToken(token, "")
	if err != nil {
		t.Fatalf("FromToken failed: %v", err)
	}
	if s.UserID != 7 || s.Email != "learner@example.com" {
		t.Fatalf("unexpected session: %+v", s)
	}

	expired := signToken(t, "whatever", &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	if _, err := FromToken(expired, ""); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestFromTokenBadSubject(t *testing.T) {
	token := signToken(t, testSecret, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"},
	})
	if _, err := FromToken(token, testSecret); err == nil {
		t.Fatal("expected non-numeric subject to be rejected")
	}
}

func TestFromTokenGarbage(t *testing.T) {
	if _, err := FromToken("not.a.token", testSecret); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
	if _, err := FromToken("not.a.token", ""); err == nil {
		t.Fatal("expected malformed token to be rejected without a secret")
	}
}

func TestSessionValid(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	if !s.Valid(now) {
		t.Error("session before expiry should be valid")
	}
	if s.Valid(now.Add(2 * time.Minute)) {
		t.Error("session past expiry should be invalid")
	}
	if !(&Session{}).Valid(now) {
		t.Error("session without expiry should always be valid")
	}
}
