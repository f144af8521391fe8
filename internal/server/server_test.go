package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/me/folio/internal/auth"
	"github.com/me/folio/internal/config"
	"github.com/me/folio/internal/store"
	"github.com/me/folio/internal/upload"
	"github.com/me/folio/pkg/model"
)

func testServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := store.NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := config.DefaultServerConfig()
	cfg.SessionSecret = "test-secret"

	srv, err := New(cfg, config.DefaultSiteConfig(), st, logger, opts...)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

// seedAccount creates an account and returns a session token for it.
func seedAccount(t *testing.T, srv *Server, role model.AccountRole) string {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	acct := &model.Account{
		ID:           "acct_" + uuid.New().String(),
		Email:        string(role) + "@example.com",
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := srv.store.CreateAccount(context.Background(), acct); err != nil {
		t.Fatalf("create account: %v", err)
	}
	token, _, err := srv.codec.Encode(acct.ID, string(role))
	if err != nil {
		t.Fatalf("encode token: %v", err)
	}
	return token
}

// envelope is used to decode the standard response envelope.
type envelope struct {
	Status     string            `json:"status"`
	RequestID  string            `json:"request_id"`
	Timestamp  string            `json:"timestamp"`
	Data       json.RawMessage   `json:"data"`
	Pagination *model.Pagination `json:"pagination"`
	Error      *model.APIError   `json:"error"`
}

func doRequest(t *testing.T, srv *Server, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid JSON: %v, body=%s", method, path, err, w.Body.String())
	}
	return w, env
}

func doGet(t *testing.T, srv *Server, path string, token string) envelope {
	t.Helper()
	w, env := doRequest(t, srv, http.MethodGet, path, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status=%d, want 200, body=%s", path, w.Code, w.Body.String())
	}
	return env
}

func TestDiscovery(t *testing.T) {
	srv := testServer(t)
	env := doGet(t, srv, "/api/v1/", "")
	if env.Status != "ok" {
		t.Errorf("status = %q, want ok", env.Status)
	}
	if env.RequestID == "" {
		t.Error("request_id is empty")
	}

	var data struct {
		Name      string   `json:"name"`
		Resources []string `json:"resources"`
	}
	json.Unmarshal(env.Data, &data)
	if data.Name != "Folio" {
		t.Errorf("name = %q, want Folio", data.Name)
	}
	if len(data.Resources) < 6 {
		t.Errorf("resources count = %d, want >= 6", len(data.Resources))
	}
}

func TestHealth(t *testing.T) {
	srv := testServer(t, WithUploader(upload.NewMemoryUploader("")))
	env := doGet(t, srv, "/api/v1/health", "")

	var data struct {
		Status  string `json:"status"`
		Version string `json:"version"`
		Store   string `json:"store"`
		Uploads string `json:"uploads"`
	}
	json.Unmarshal(env.Data, &data)
	if data.Status != "healthy" {
		t.Errorf("status = %q, want healthy", data.Status)
	}
	if data.Store != "ok" {
		t.Errorf("store = %q, want ok", data.Store)
	}
	if data.Uploads != "enabled" {
		t.Errorf("uploads = %q, want enabled", data.Uploads)
	}
}

func TestAdminWriteRequiresSession(t *testing.T) {
	srv := testServer(t)

	w, env := doRequest(t, srv, http.MethodPost, "/api/v1/projects",
		map[string]any{"title": "New"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if env.Error == nil || env.Error.Code != model.ErrUnauthorized {
		t.Errorf("error = %+v, want UNAUTHORIZED", env.Error)
	}
}

func TestAdminWriteRejectsSubscriber(t *testing.T) {
	srv := testServer(t)
	token := seedAccount(t, srv, model.RoleSubscriber)

	w, env := doRequest(t, srv, http.MethodPost, "/api/v1/projects",
		map[string]any{"title": "New"}, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if env.Error == nil || env.Error.Code != model.ErrForbidden {
		t.Errorf("error = %+v, want FORBIDDEN", env.Error)
	}
}

func TestProjectLifecycle(t *testing.T) {
	srv := testServer(t)
	token := seedAccount(t, srv, model.RoleAdmin)

	// Create
	w, env := doRequest(t, srv, http.MethodPost, "/api/v1/projects", map[string]any{
		"title":    "Portfolio Rebuild",
		"summary":  "A fresh coat of paint",
		"tags":     []string{"go", "web"},
		"featured": true,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body=%s", w.Code, w.Body.String())
	}
	var created model.Project
	json.Unmarshal(env.Data, &created)
	if created.ID == "" {
		t.Fatal("created project has no ID")
	}
	if created.Slug != "portfolio-rebuild" {
		t.Errorf("slug = %q, want portfolio-rebuild", created.Slug)
	}

	// Get by ID and by slug
	env = doGet(t, srv, "/api/v1/projects/"+created.ID, "")
	var got model.Project
	json.Unmarshal(env.Data, &got)
	if got.Title != "Portfolio Rebuild" {
		t.Errorf("title = %q", got.Title)
	}
	env = doGet(t, srv, "/api/v1/projects/portfolio-rebuild", "")
	json.Unmarshal(env.Data, &got)
	if got.ID != created.ID {
		t.Errorf("slug lookup ID = %q, want %q", got.ID, created.ID)
	}

	// Update
	w, env = doRequest(t, srv, http.MethodPut, "/api/v1/projects/"+created.ID, map[string]any{
		"title":   "Portfolio Rebuild v2",
		"summary": "Now with more paint",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body=%s", w.Code, w.Body.String())
	}
	json.Unmarshal(env.Data, &got)
	if got.Title != "Portfolio Rebuild v2" {
		t.Errorf("updated title = %q", got.Title)
	}

	// List with pagination envelope
	env = doGet(t, srv, "/api/v1/projects", "")
	if env.Pagination == nil || env.Pagination.Total != 1 {
		t.Errorf("pagination = %+v, want total 1", env.Pagination)
	}

	// Delete, then 404
	w, _ = doRequest(t, srv, http.MethodDelete, "/api/v1/projects/"+created.ID, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w, env = doRequest(t, srv, http.MethodGet, "/api/v1/projects/"+created.ID, nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
	if env.Error == nil || env.Error.Code != model.ErrNotFound {
		t.Errorf("error = %+v, want NOT_FOUND", env.Error)
	}
}

func TestCreateProjectDuplicateSlug(t *testing.T) {
	srv := testServer(t)
	token := seedAccount(t, srv, model.RoleAdmin)

	body := map[string]any{"title": "Same Name"}
	if w, _ := doRequest(t, srv, http.MethodPost, "/api/v1/projects", body, token); w.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", w.Code)
	}
	w, env := doRequest(t, srv, http.MethodPost, "/api/v1/projects", body, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("second create status = %d, want 409", w.Code)
	}
	if env.Error == nil || env.Error.Code != model.ErrConflict {
		t.Errorf("error = %+v, want CONFLICT", env.Error)
	}
}

func TestCreateMessageValidation(t *testing.T) {
	srv := testServer(t)

	w, env := doRequest(t, srv, http.MethodPost, "/api/v1/messages", map[string]any{
		"name":  "",
		"email": "not-an-email",
		"body":  "",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.Error == nil || env.Error.Code != model.ErrValidation {
		t.Fatalf("error = %+v, want VALIDATION_ERROR", env.Error)
	}
	if len(env.Error.Details) != 3 {
		t.Errorf("field errors = %d, want 3", len(env.Error.Details))
	}

	w, _ = doRequest(t, srv, http.MethodPost, "/api/v1/messages", map[string]any{
		"name":  "Visitor",
		"email": "visitor@example.com",
		"body":  "Hello there",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("valid message status = %d, want 201, body=%s", w.Code, w.Body.String())
	}
}

func TestMessagesRequireAdmin(t *testing.T) {
	srv := testServer(t)

	w, _ := doRequest(t, srv, http.MethodGet, "/api/v1/messages", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("list messages status = %d, want 401", w.Code)
	}
}

func TestPostsPublishedFilter(t *testing.T) {
	srv := testServer(t)
	token := seedAccount(t, srv, model.RoleAdmin)

	for _, p := range []map[string]any{
		{"title": "Public Post", "body": "out there", "published": true},
		{"title": "Secret Draft", "body": "not yet"},
	} {
		if w, _ := doRequest(t, srv, http.MethodPost, "/api/v1/posts", p, token); w.Code != http.StatusCreated {
			t.Fatalf("create post status = %d", w.Code)
		}
	}

	// Anonymous list sees only the published post.
	env := doGet(t, srv, "/api/v1/posts", "")
	var posts []model.Post
	json.Unmarshal(env.Data, &posts)
	if len(posts) != 1 || posts[0].Title != "Public Post" {
		t.Errorf("anonymous posts = %d, want only the published one", len(posts))
	}
	if posts[0].PublishedAt == nil {
		t.Error("published post has no published_at")
	}

	// Admin list sees both.
	env = doGet(t, srv, "/api/v1/posts", token)
	json.Unmarshal(env.Data, &posts)
	if len(posts) != 2 {
		t.Errorf("admin posts = %d, want 2", len(posts))
	}

	// Draft detail is hidden from anonymous visitors but not the admin.
	if w, _ := doRequest(t, srv, http.MethodGet, "/api/v1/posts/secret-draft", nil, ""); w.Code != http.StatusNotFound {
		t.Errorf("anonymous draft status = %d, want 404", w.Code)
	}
	if w, _ := doRequest(t, srv, http.MethodGet, "/api/v1/posts/secret-draft", nil, token); w.Code != http.StatusOK {
		t.Errorf("admin draft status = %d, want 200", w.Code)
	}
}

func TestUnpublishClearsTimestamp(t *testing.T) {
	srv := testServer(t)
	token := seedAccount(t, srv, model.RoleAdmin)

	_, env := doRequest(t, srv, http.MethodPost, "/api/v1/posts",
		map[string]any{"title": "Flip Flop", "body": "b", "published": true}, token)
	var post model.Post
	json.Unmarshal(env.Data, &post)
	if post.PublishedAt == nil {
		t.Fatal("publish did not stamp published_at")
	}

	// Decode into a fresh struct: published_at is omitempty, so an absent
	// field would leave a previously decoded pointer in place.
	_, env = doRequest(t, srv, http.MethodPut, "/api/v1/posts/"+post.ID,
		map[string]any{"title": "Flip Flop", "body": "b", "published": false}, token)
	var unpublished model.Post
	json.Unmarshal(env.Data, &unpublished)
	if unpublished.PublishedAt != nil {
		t.Error("unpublish kept published_at")
	}
	if unpublished.Published {
		t.Error("post still marked published")
	}
}

func TestUploadDisabledWithoutUploader(t *testing.T) {
	srv := testServer(t)
	token := seedAccount(t, srv, model.RoleAdmin)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestUpload(t *testing.T) {
	up := upload.NewMemoryUploader("")
	srv := testServer(t, WithUploader(up))
	token := seedAccount(t, srv, model.RoleAdmin)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="avatar.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write([]byte("fake png bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", w.Code, w.Body.String())
	}
	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	var data struct {
		URL string `json:"url"`
	}
	json.Unmarshal(env.Data, &data)
	if data.URL == "" {
		t.Fatal("no url in response")
	}
	if up.Len() != 1 {
		t.Errorf("stored objects = %d, want 1", up.Len())
	}
}
