package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Login and admin-home targets for the gate's redirects.
const (
	LoginPath     = "/auth/login"
	AdminHomePath = "/admin"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext retrieves the session payload stored by the gate.
// Returns nil for anonymous requests.
func SessionFromContext(ctx context.Context) *SessionPayload {
	sess, _ := ctx.Value(sessionContextKey).(*SessionPayload)
	return sess
}

// RouteRules classifies request paths by prefix. It is the single source of
// route-class decisions; handlers never do their own prefix checks.
type RouteRules struct {
	AdminPrefixes    []string // admin-protected pages
	AuthPrefixes     []string // auth-only pages (login, register)
	ExcludedPrefixes []string // static assets, API routes, logout; never gated
}

// RouteClass is the set of tags assigned to a path.
type RouteClass struct {
	Admin    bool
	AuthOnly bool
	Excluded bool
}

// Classify tags a request path. Exclusion wins over everything else.
func (r RouteRules) Classify(path string) RouteClass {
	var class RouteClass
	for _, p := range r.ExcludedPrefixes {
		if hasPathPrefix(path, p) {
			class.Excluded = true
			return class
		}
	}
	for _, p := range r.AdminPrefixes {
		if hasPathPrefix(path, p) {
			class.Admin = true
			break
		}
	}
	for _, p := range r.AuthPrefixes {
		if hasPathPrefix(path, p) {
			class.AuthOnly = true
			break
		}
	}
	return class
}

// hasPathPrefix matches whole path segments, so "/admin" covers "/admin" and
// "/admin/projects" but not "/administrivia".
func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

// Gate is the route access gate. Every page request passes through it once;
// it refreshes valid sessions and produces a forward-or-redirect decision.
// The gate itself never fails: decode problems behave as "no session".
type Gate struct {
	cookies *CookieStore
	rules   RouteRules
	logger  *slog.Logger
}

// NewGate creates a Gate over the given cookie accessor and route rules.
func NewGate(cookies *CookieStore, rules RouteRules, logger *slog.Logger) *Gate {
	return &Gate{
		cookies: cookies,
		rules:   rules,
		logger:  logger.With("component", "gate"),
	}
}

// Middleware evaluates one request:
//
//  1. Excluded paths are forwarded untouched, no session read or refresh.
//  2. The session is read; a decodable session is refreshed. The routing
//     decision below uses the pre-refresh validity only, so a failed refresh
//     can never change the outcome.
//  3. Admin-protected without a session redirects to the login page.
//     Auth-only with a session redirects to the admin home. Everything else
//     forwards, with the payload in context for downstream handlers.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class := g.rules.Classify(r.URL.Path)
		if class.Excluded {
			next.ServeHTTP(w, r)
			return
		}

		payload, err := g.cookies.ReadCurrent(r)
		valid := err == nil && payload != nil
		if valid {
			g.cookies.Refresh(w, r)
		} else if err != nil && err != ErrNoSession {
			g.logger.Debug("session rejected", "path", r.URL.Path, "reason", err)
		}

		switch {
		case class.Admin && !valid:
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		case class.AuthOnly && valid:
			http.Redirect(w, r, AdminHomePath, http.StatusSeeOther)
			return
		}

		if valid {
			r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, payload))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession is JSON-API middleware: it responds 401 instead of
// redirecting, for write endpoints under the gate's exclusion list.
func (g *Gate) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := g.cookies.ReadCurrent(r)
		if err != nil || payload == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status":"error","error":{"code":"UNAUTHORIZED","message":"authentication required"}}`))
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, payload))
		next.ServeHTTP(w, r)
	})
}
