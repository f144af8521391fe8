package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is the validity window of a session token. Refreshing re-signs
// with a fresh window, giving sliding-window expiry.
const SessionTTL = 7 * 24 * time.Hour

// Sentinel decode failures. Callers that only care about "logged in or not"
// treat both the same; tests can still tell them apart.
var (
	// ErrTokenExpired means the token verified but its exp is in the past.
	ErrTokenExpired = errors.New("session token expired")
	// ErrTokenInvalid covers malformed tokens and bad signatures.
	ErrTokenInvalid = errors.New("session token invalid")
)

// SessionPayload is the decoded contents of a session token. It is never
// persisted server-side; the signed token held by the client is its only
// durable form. Logout can therefore only delete the cookie: a copied token
// stays cryptographically valid until exp, which is an accepted limitation
// of the design.
type SessionPayload struct {
	SubjectID string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type sessionClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens with a process-wide HMAC key.
// The key is read-only after construction and safe to share across request
// handlers.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

// NewTokenCodec creates a codec. An empty secret is a construction error,
// not something to discover on the first request.
func NewTokenCodec(secret string) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	return &TokenCodec{secret: []byte(secret), now: time.Now}, nil
}

// Encode produces a signed HS256 token for the subject, with iat set to now
// and exp to now plus SessionTTL.
func (c *TokenCodec) Encode(subjectID, role string) (token string, expiresAt time.Time, err error) {
	now := c.now()
	expiresAt = now.Add(SessionTTL)

	claims := sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Decode verifies the signature and expiry and returns the payload.
// Every failure maps to ErrTokenExpired or ErrTokenInvalid; Decode never
// panics and never returns a partially valid payload. Anonymous visitors
// make "no valid session" a frequent, normal case.
func (c *TokenCodec) Decode(token string) (*SessionPayload, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing algorithm")
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	payload := &SessionPayload{
		SubjectID: claims.Subject,
		Role:      claims.Role,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		payload.ExpiresAt = claims.ExpiresAt.Time
	}
	return payload, nil
}
