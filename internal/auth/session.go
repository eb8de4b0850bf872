package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the session cookie set on login and read by the
	// auth middleware.
	CookieName = "lexai_session"

	// SessionTTL is the absolute session lifetime. There is no refresh or
	// rotation: after expiry the user logs in again.
	SessionTTL = 8 * time.Hour
)

// Sessions issues and verifies the signed session tokens carried in the
// cookie. Verification is stateless; rotating the secret invalidates every
// outstanding session.
type Sessions struct {
	secret []byte
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret)}
}

// Issue creates a signed token embedding only the username claim.
func (s *Sessions) Issue(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(SessionTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// Verify returns the username for a valid token. It fails closed: a bad
// signature, malformed token or expired claim all yield ok=false.
func (s *Sessions) Verify(tokenString string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
