package ui

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/me/folio/internal/auth"
	"github.com/me/folio/internal/config"
	"github.com/me/folio/internal/store"
	"github.com/me/folio/pkg/model"
)

const (
	testAdminEmail    = "owner@example.com"
	testAdminPassword = "correct horse battery staple"
)

// testHarness wires a UI, its route gate, and an in-memory store into a
// single router, the same shape the server assembles in production.
type testHarness struct {
	router  chi.Router
	store   store.Store
	codec   *auth.TokenCodec
	cookies *auth.CookieStore
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := store.NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	hash, err := auth.HashPassword(testAdminPassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := &model.Account{
		ID:           "acct_" + uuid.New().String(),
		Email:        testAdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := st.CreateAccount(context.Background(), admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	codec, err := auth.NewTokenCodec("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	cookies := auth.NewCookieStore(codec, false)
	site := config.DefaultSiteConfig()
	gate := auth.NewGate(cookies, auth.RouteRules{
		AdminPrefixes:    site.Routes.AdminPrefixes,
		AuthPrefixes:     site.Routes.AuthPrefixes,
		ExcludedPrefixes: site.Routes.ExcludedPrefixes,
	}, logger)

	ui := New(st, auth.NewVerifier(st), codec, cookies, site, logger)

	r := chi.NewRouter()
	r.Use(gate.Middleware)
	ui.RegisterRoutes(r)

	return &testHarness{router: r, store: st, codec: codec, cookies: cookies}
}

// get performs a GET request, optionally with a session cookie.
func (h *testHarness) get(t *testing.T, path string, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: sessionToken})
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

// postForm performs a form POST, optionally with a session cookie.
func (h *testHarness) postForm(t *testing.T, path string, form url.Values, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: sessionToken})
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

// login signs in as the seeded admin and returns the session token.
func (h *testHarness) login(t *testing.T) string {
	t.Helper()
	w := h.postForm(t, "/auth/login", url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	}, "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	token := sessionCookieValue(w)
	if token == "" {
		t.Fatal("login did not set a session cookie")
	}
	return token
}

// sessionCookieValue extracts the session cookie value from a response.
func sessionCookieValue(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c.Value
		}
	}
	return ""
}

func TestHomePageRendersWithoutProfile(t *testing.T) {
	h := newTestHarness(t)

	w := h.get(t, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "has not been set up") {
		t.Error("expected empty-site placeholder in body")
	}
}

func TestHomePageShowsProfile(t *testing.T) {
	h := newTestHarness(t)
	err := h.store.SaveProfile(context.Background(), &model.Profile{
		Name:     "Ada Example",
		Headline: "Software engineer",
		Bio:      "I build things.",
		Skills:   []model.Skill{{Name: "Go", Level: 90}},
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}

	w := h.get(t, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Ada Example", "Software engineer", "Go"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	h := newTestHarness(t)

	w := h.postForm(t, "/auth/login", url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	}, "")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != auth.AdminHomePath {
		t.Errorf("redirect = %q, want %q", loc, auth.AdminHomePath)
	}

	token := sessionCookieValue(w)
	if token == "" {
		t.Fatal("no session cookie set")
	}
	payload, err := h.codec.Decode(token)
	if err != nil {
		t.Fatalf("decode session token: %v", err)
	}
	if payload.Role != string(model.RoleAdmin) {
		t.Errorf("session role = %q, want %q", payload.Role, model.RoleAdmin)
	}
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	h := newTestHarness(t)

	w := h.postForm(t, "/auth/login", url.Values{
		"email":    {testAdminEmail},
		"password": {"not the password"},
	}, "")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, auth.LoginPath) {
		t.Errorf("redirect = %q, want back to login", loc)
	}
	if sessionCookieValue(w) != "" {
		t.Error("session cookie set on failed login")
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	h := newTestHarness(t)

	wrong := h.postForm(t, "/auth/login", url.Values{
		"email":    {testAdminEmail},
		"password": {"not the password"},
	}, "")
	unknown := h.postForm(t, "/auth/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {testAdminPassword},
	}, "")

	if wrong.Header().Get("Location") != unknown.Header().Get("Location") {
		t.Errorf("error redirect differs: %q vs %q",
			wrong.Header().Get("Location"), unknown.Header().Get("Location"))
	}
}

func TestAdminRedirectsAnonymousToLogin(t *testing.T) {
	h := newTestHarness(t)

	for _, path := range []string{"/admin", "/admin/projects", "/admin/messages"} {
		w := h.get(t, path, "")
		if w.Code != http.StatusSeeOther {
			t.Errorf("%s: status = %d, want 303", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != auth.LoginPath {
			t.Errorf("%s: redirect = %q, want %q", path, loc, auth.LoginPath)
		}
	}
}

func TestLoginPageRedirectsSignedInVisitor(t *testing.T) {
	h := newTestHarness(t)
	token := h.login(t)

	w := h.get(t, auth.LoginPath, token)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != auth.AdminHomePath {
		t.Errorf("redirect = %q, want %q", loc, auth.AdminHomePath)
	}
}

func TestAdminDashboard(t *testing.T) {
	h := newTestHarness(t)
	token := h.login(t)

	w := h.get(t, "/admin", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Dashboard") {
		t.Error("dashboard heading missing")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h := newTestHarness(t)
	token := h.login(t)

	w := h.postForm(t, "/logout", url.Values{}, token)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect = %q, want /", loc)
	}

	// The only session cookie in the response must be the expiring one;
	// a refreshed 7-day cookie here would keep the session alive.
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name != auth.SessionCookieName {
			continue
		}
		if c.MaxAge >= 0 && c.Value != "" {
			t.Errorf("logout reissued a live session cookie (max-age %d)", c.MaxAge)
		}
		if c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("logout did not expire the session cookie")
	}
}

func TestContactFormStoresMessage(t *testing.T) {
	h := newTestHarness(t)

	w := h.postForm(t, "/contact", url.Values{
		"name":    {"Visitor"},
		"email":   {"Visitor@Example.com"},
		"subject": {"Hello"},
		"message": {"I would like to hire you."},
	}, "")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/contact?sent=1" {
		t.Errorf("redirect = %q, want /contact?sent=1", loc)
	}

	msgs, total, err := h.store.ListMessages(context.Background(), model.ListOptions{Limit: 10})
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if msgs[0].Email != "visitor@example.com" {
		t.Errorf("email = %q, want lowercased", msgs[0].Email)
	}
}

func TestContactFormRejectsMissingFields(t *testing.T) {
	h := newTestHarness(t)

	w := h.postForm(t, "/contact", url.Values{
		"name":    {"Visitor"},
		"email":   {"not-an-email"},
		"message": {"hi"},
	}, "")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.Contains(loc, "error=") {
		t.Errorf("redirect = %q, want error", loc)
	}

	if _, total, _ := h.store.ListMessages(context.Background(), model.ListOptions{}); total != 0 {
		t.Errorf("message stored despite invalid form, total = %d", total)
	}
}

func TestAdminProjectSaveCreatesProject(t *testing.T) {
	h := newTestHarness(t)
	token := h.login(t)

	w := h.postForm(t, "/admin/projects/new", url.Values{
		"title":    {"My New Project"},
		"summary":  {"A thing I built"},
		"body":     {"Longer write-up."},
		"tags":     {"go, web"},
		"featured": {"on"},
	}, token)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body: %s", w.Code, w.Body.String())
	}

	proj, err := h.store.GetProjectBySlug(context.Background(), "my-new-project")
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if proj == nil {
		t.Fatal("project not created")
	}
	if !proj.Featured {
		t.Error("featured flag not set")
	}
	if len(proj.Tags) != 2 || proj.Tags[0] != "go" {
		t.Errorf("tags = %v, want [go web]", proj.Tags)
	}
}

func TestBlogHidesDraftsFromAnonymous(t *testing.T) {
	h := newTestHarness(t)
	now := time.Now().UTC()

	published := &model.Post{
		ID: "post_1", Slug: "published-post", Title: "Published Post",
		Body: "body", Published: true, PublishedAt: &now,
		CreatedAt: now, UpdatedAt: now,
	}
	draft := &model.Post{
		ID: "post_2", Slug: "draft-post", Title: "Draft Post",
		Body: "body", CreatedAt: now, UpdatedAt: now,
	}
	for _, p := range []*model.Post{published, draft} {
		if err := h.store.CreatePost(context.Background(), p); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	w := h.get(t, "/blog", "")
	body := w.Body.String()
	if !strings.Contains(body, "Published Post") {
		t.Error("published post missing from blog list")
	}
	if strings.Contains(body, "Draft Post") {
		t.Error("draft post visible to anonymous visitor")
	}

	if w := h.get(t, "/blog/draft-post", ""); w.Code != http.StatusNotFound {
		t.Errorf("draft detail status = %d, want 404", w.Code)
	}

	token := h.login(t)
	if w := h.get(t, "/blog/draft-post", token); w.Code != http.StatusOK {
		t.Errorf("draft detail for admin status = %d, want 200", w.Code)
	}
}

func TestMessageDetailMarksRead(t *testing.T) {
	h := newTestHarness(t)
	token := h.login(t)

	msg := &model.ContactMessage{
		ID: "msg_1", Name: "Visitor", Email: "v@example.com",
		Body: "hello", CreatedAt: time.Now().UTC(),
	}
	if err := h.store.CreateMessage(context.Background(), msg); err != nil {
		t.Fatalf("create message: %v", err)
	}

	if w := h.get(t, "/admin/messages/msg_1", token); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	got, err := h.store.GetMessage(context.Background(), "msg_1")
	if err != nil {
		t.Fatalf("get message: %v", err)
	}
	if !got.Read {
		t.Error("opening the message did not mark it read")
	}
}
