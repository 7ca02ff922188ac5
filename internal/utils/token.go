package utils // package utils provides helpers for session token creation and parsing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// SessionClaims are the values carried inside a session token. The
// token only names the session; the identity record itself lives in
// the session store under the SessionID key. Tokens carry no exp
// claim: a stored session is valid until it is explicitly cleared.
type SessionClaims struct {
	SessionID string // opaque id of the stored session record
	UserID    uint64 // subject, kept for logging and rate-limit keys
	Role      string // user | admin
}

// ErrInvalidToken is returned when a session token fails to parse or
// verify.
var ErrInvalidToken = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT naming a stored
// session. It includes sid (session id), sub (user id), role and iat.
// There is deliberately no exp claim; sessions do not expire on their
// own.
func NewSessionToken(secret string, claims SessionClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":  claims.SessionID,
		"sub":  claims.UserID,
		"role": claims.Role,
		"iat":  time.Now().UTC().Unix(),
	})
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies an HS256 session token and extracts its
// claims. Tokens signed with any other method are rejected.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return SessionClaims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}
	var out SessionClaims
	if v, ok := mc["sid"].(string); ok {
		out.SessionID = v
	}
	if out.SessionID == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	// JWT numbers decode as float64.
	if v, ok := mc["sub"].(float64); ok {
		out.UserID = uint64(v)
	}
	if v, ok := mc["role"].(string); ok {
		out.Role = v
	}
	return out, nil
}
