package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrExpired = errors.New("session token expired")

// Claims mirrors the backend's token payload.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Session is the authenticated learner context passed explicitly into each
// component constructor.
type Session struct {
	Token     string
	UserID    int64
	Email     string
	ExpiresAt time.Time
}

// FromToken builds a Session from a bearer token. When secret is non-empty
// the HMAC signature is verified; otherwise the claims are read as-is (the
// client is not the token's audience of trust, the backend re-checks every
// request).
func FromToken(token, secret string) (*Session, error) {
	claims := &Claims{}
	var err error
	if secret != "" {
		var parsed *jwt.Token
		parsed, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err == nil && !parsed.Valid {
			err = errors.New("invalid token")
		}
	} else {
		_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	}
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("parsing session token: %w", err)
	}

	s := &Session{Token: token, Email: claims.Email}
	if claims.Subject != "" {
		uid, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("token subject %q is not a user id: %w", claims.Subject, err)
		}
		s.UserID = uid
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
		if s.ExpiresAt.Before(time.Now()) {
			return nil, ErrExpired
		}
	}
	return s, nil
}

// Valid reports whether the session has not expired at the given instant.
// Sessions without an expiry claim are always valid.
func (s *Session) Valid(now time.Time) bool {
	return s.ExpiresAt.IsZero() || s.ExpiresAt.After(now)
}
