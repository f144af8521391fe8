package auth

import (
	"errors"
	"net/http"
	"time"
)

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "session"

// ErrNoSession means the request carried no session cookie at all.
// Distinct from a decode failure, though callers usually collapse both.
var ErrNoSession = errors.New("no session cookie")

// CookieStore reads and writes the session token on HTTP requests.
type CookieStore struct {
	codec  *TokenCodec
	secure bool // Secure flag on the cookie (production only)
}

// NewCookieStore creates a cookie accessor around the given codec.
func NewCookieStore(codec *TokenCodec, secure bool) *CookieStore {
	return &CookieStore{codec: codec, secure: secure}
}

// ReadCurrent decodes the session cookie on the request. Side-effect-free.
// Returns ErrNoSession when the cookie is absent; decode errors pass through
// from the codec.
func (s *CookieStore) ReadCurrent(r *http.Request) (*SessionPayload, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}
	return s.codec.Decode(cookie.Value)
}

// Persist writes the signed token into an HTTP-only, same-site-lax cookie
// scoped to the whole site, expiring with the token.
func (s *CookieStore) Persist(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	})
}

// Clear deletes the session cookie. Used by logout.
func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Refresh re-signs the current session with a fresh expiry and persists it,
// extending the window on continued activity. Absent or invalid sessions are
// a no-op: refresh never creates a session from nothing.
func (s *CookieStore) Refresh(w http.ResponseWriter, r *http.Request) {
	payload, err := s.ReadCurrent(r)
	if err != nil {
		return
	}
	token, expiresAt, err := s.codec.Encode(payload.SubjectID, payload.Role)
	if err != nil {
		return
	}
	s.Persist(w, token, expiresAt)
}
