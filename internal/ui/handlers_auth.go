package ui

import (
	"errors"
	"net/http"
	"strings"

	"github.com/me/folio/internal/auth"
	"github.com/me/folio/pkg/model"
)

// isAdmin reports whether the request carries an admin session.
func (ui *UI) isAdmin(r *http.Request) bool {
	payload := auth.SessionFromContext(r.Context())
	if payload == nil {
		payload, _ = ui.cookies.ReadCurrent(r)
	}
	return payload != nil && payload.Role == string(model.RoleAdmin)
}

// HandleLoginPage renders the login form. Signed-in visitors never reach
// this handler: the gate redirects them to the admin home first.
func (ui *UI) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	data := ui.pageData(r, "Sign in - "+ui.site.Title)
	data["Error"] = r.URL.Query().Get("error")
	ui.render(w, "auth/login", data)
}

// HandleLoginPost verifies the submitted credentials and establishes a
// session cookie. The error message is identical for an unknown email
// and a wrong password.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, auth.LoginPath+"?error=Invalid+request", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		http.Redirect(w, r, auth.LoginPath+"?error=Email+and+password+required", http.StatusSeeOther)
		return
	}

	identity, err := ui.verifier.Verify(r.Context(), email, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			ui.logger.Error("login verification failed", "error", err)
		} else {
			ui.logger.Warn("login rejected", "email", email)
		}
		http.Redirect(w, r, auth.LoginPath+"?error=Invalid+email+or+password", http.StatusSeeOther)
		return
	}

	token, expiresAt, err := ui.codec.Encode(identity.SubjectID, identity.Role)
	if err != nil {
		ui.renderError(w, r, "Failed to establish session", err)
		return
	}
	ui.cookies.Persist(w, token, expiresAt)

	if err := ui.store.TouchLastLogin(r.Context(), identity.SubjectID); err != nil {
		ui.logger.Warn("touch last login failed", "error", err)
	}

	ui.logger.Info("user signed in", "subject", identity.SubjectID, "role", identity.Role)
	http.Redirect(w, r, auth.AdminHomePath, http.StatusSeeOther)
}

// HandleLogout clears the session cookie and returns to the public site.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ui.cookies.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
