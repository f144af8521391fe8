package ui

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/me/folio/internal/auth"
	"github.com/me/folio/internal/config"
	"github.com/me/folio/internal/store"
)

// UI serves the server-rendered HTML: the public site, the login page,
// and the admin back-office.
type UI struct {
	store     store.Store
	verifier  *auth.Verifier
	codec     *auth.TokenCodec
	cookies   *auth.CookieStore
	site      config.SiteConfig
	logger    *slog.Logger
	startTime time.Time
}

// New creates a UI handler.
func New(st store.Store, verifier *auth.Verifier, codec *auth.TokenCodec, cookies *auth.CookieStore, site config.SiteConfig, logger *slog.Logger) *UI {
	return &UI{
		store:     st,
		verifier:  verifier,
		codec:     codec,
		cookies:   cookies,
		site:      site,
		logger:    logger.With("component", "ui"),
		startTime: time.Now(),
	}
}

// pageData seeds the template data map with fields every page needs.
func (ui *UI) pageData(r *http.Request, title string) map[string]any {
	return map[string]any{
		"Title":   title,
		"Site":    ui.site,
		"Session": auth.SessionFromContext(r.Context()),
		"Path":    r.URL.Path,
	}
}

func (ui *UI) render(w http.ResponseWriter, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		ui.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	buf.WriteTo(w)
}

func (ui *UI) renderError(w http.ResponseWriter, r *http.Request, message string, err error) {
	ui.logger.Error(message, "error", err)
	data := ui.pageData(r, "Error")
	data["Message"] = message
	w.WriteHeader(http.StatusInternalServerError)
	ui.render(w, "error", data)
}

func (ui *UI) renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	data := ui.pageData(r, "Not Found")
	data["Message"] = message
	w.WriteHeader(http.StatusNotFound)
	ui.render(w, "error", data)
}
