package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/me/folio/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// formatTime renders a timestamp for storage; the zero time becomes "".
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

// parseTime is the inverse of formatTime; "" parses to the zero time.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// --- Account CRUD ---

func (s *SQLiteStore) CreateAccount(ctx context.Context, acct *model.Account) error {
	s.logger.Debug("sql", "op", "insert", "table", "accounts", "id", acct.ID)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, role, created_at, last_login_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		acct.ID, acct.Email, acct.PasswordHash, string(acct.Role),
		acct.CreatedAt.Format(time.RFC3339Nano), formatTime(acct.LastLoginAt),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("account email %s already exists", acct.Email)
	}
	return err
}

func (s *SQLiteStore) scanAccountRow(row *sql.Row) (*model.Account, error) {
	var acct model.Account
	var role, createdAt, lastLoginAt string

	err := row.Scan(&acct.ID, &acct.Email, &acct.PasswordHash, &role, &createdAt, &lastLoginAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	acct.Role = model.AccountRole(role)
	acct.CreatedAt = parseTime(createdAt)
	acct.LastLoginAt = parseTime(lastLoginAt)
	return &acct, nil
}

func (s *SQLiteStore) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	s.logger.Debug("sql", "op", "select", "table", "accounts", "id", id)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role, created_at, last_login_at
		 FROM accounts WHERE id = ?`, id)
	return s.scanAccountRow(row)
}

func (s *SQLiteStore) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.logger.Debug("sql", "op", "select_by_email", "table", "accounts")

	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role, created_at, last_login_at
		 FROM accounts WHERE email = ?`, email)
	return s.scanAccountRow(row)
}

func (s *SQLiteStore) ListAccounts(ctx context.Context, opts model.ListOptions) ([]*model.Account, int, error) {
	s.logger.Debug("sql", "op", "list", "table", "accounts", "limit", opts.Limit, "offset", opts.Offset)
	opts.Clamp()

	where, args := "", []any{}
	if opts.Search != "" {
		where = ` WHERE email LIKE ?`
		args = append(args, "%"+opts.Search+"%")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, password_hash, role, created_at, last_login_at
		 FROM accounts`+where+` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		append(args, opts.Limit, opts.Offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var acct model.Account
		var role, createdAt, lastLoginAt string

		if err := rows.Scan(&acct.ID, &acct.Email, &acct.PasswordHash, &role, &createdAt, &lastLoginAt); err != nil {
			return nil, 0, err
		}
		acct.Role = model.AccountRole(role)
		acct.CreatedAt = parseTime(createdAt)
		acct.LastLoginAt = parseTime(lastLoginAt)

		accounts = append(accounts, &acct)
	}
	return accounts, total, rows.Err()
}

func (s *SQLiteStore) UpdateAccount(ctx context.Context, acct *model.Account) error {
	s.logger.Debug("sql", "op", "update", "table", "accounts", "id", acct.ID)

	result, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET email=?, password_hash=?, role=?, last_login_at=? WHERE id=?`,
		acct.Email, acct.PasswordHash, string(acct.Role), formatTime(acct.LastLoginAt), acct.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("account %s not found", acct.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteAccount(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "accounts", "id", id)

	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("account %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) TouchLastLogin(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "touch_last_login", "table", "accounts", "id", id)

	_, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET last_login_at=? WHERE id=?`,
		time.Now().UTC().Format(time.RFC3339Nano), id,
	)
	return err
}

// --- Profile ---

func (s *SQLiteStore) GetProfile(ctx context.Context) (*model.Profile, error) {
	s.logger.Debug("sql", "op", "select", "table", "profile")

	var p model.Profile
	var skillsJSON, servicesJSON, socialsJSON string
	var updatedAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT name, headline, bio, avatar_url, skills, services, socials, updated_at
		 FROM profile WHERE id = 1`,
	).Scan(&p.Name, &p.Headline, &p.Bio, &p.AvatarURL, &skillsJSON, &servicesJSON, &socialsJSON, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(skillsJSON), &p.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal([]byte(servicesJSON), &p.Services); err != nil {
		return nil, fmt.Errorf("unmarshal services: %w", err)
	}
	if err := json.Unmarshal([]byte(socialsJSON), &p.Socials); err != nil {
		return nil, fmt.Errorf("unmarshal socials: %w", err)
	}
	p.UpdatedAt = parseTime(updatedAt)

	return &p, nil
}

func (s *SQLiteStore) SaveProfile(ctx context.Context, p *model.Profile) error {
	s.logger.Debug("sql", "op", "upsert", "table", "profile")

	skillsJSON, err := json.Marshal(p.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	servicesJSON, err := json.Marshal(p.Services)
	if err != nil {
		return fmt.Errorf("marshal services: %w", err)
	}
	socialsJSON, err := json.Marshal(p.Socials)
	if err != nil {
		return fmt.Errorf("marshal socials: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profile (id, name, headline, bio, avatar_url, skills, services, socials, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, headline=excluded.headline, bio=excluded.bio,
		   avatar_url=excluded.avatar_url, skills=excluded.skills,
		   services=excluded.services, socials=excluded.socials,
		   updated_at=excluded.updated_at`,
		p.Name, p.Headline, p.Bio, p.AvatarURL,
		string(skillsJSON), string(servicesJSON), string(socialsJSON),
		p.UpdatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// --- Project CRUD ---

func (s *SQLiteStore) CreateProject(ctx context.Context, proj *model.Project) error {
	s.logger.Debug("sql", "op", "insert", "table", "projects", "id", proj.ID)

	tagsJSON, err := json.Marshal(proj.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, slug, title, summary, body, image_url, tags, repo_url, live_url, featured, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		proj.ID, proj.Slug, proj.Title, proj.Summary, proj.Body, proj.ImageURL,
		string(tagsJSON), proj.RepoURL, proj.LiveURL, proj.Featured, proj.SortOrder,
		proj.CreatedAt.Format(time.RFC3339Nano), proj.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("project slug %s already exists", proj.Slug)
	}
	return err
}

func (s *SQLiteStore) scanProjectRow(row *sql.Row) (*model.Project, error) {
	var proj model.Project
	var tagsJSON, createdAt, updatedAt string

	err := row.Scan(&proj.ID, &proj.Slug, &proj.Title, &proj.Summary, &proj.Body, &proj.ImageURL,
		&tagsJSON, &proj.RepoURL, &proj.LiveURL, &proj.Featured, &proj.SortOrder, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &proj.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	proj.CreatedAt = parseTime(createdAt)
	proj.UpdatedAt = parseTime(updatedAt)
	return &proj, nil
}

func (s *SQLiteStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	s.logger.Debug("sql", "op", "select", "table", "projects", "id", id)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, slug, title, summary, body, image_url, tags, repo_url, live_url, featured, sort_order, created_at, updated_at
		 FROM projects WHERE id = ?`, id)
	return s.scanProjectRow(row)
}

func (s *SQLiteStore) GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error) {
	s.logger.Debug("sql", "op", "select_by_slug", "table", "projects", "slug", slug)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, slug, title, summary, body, image_url, tags, repo_url, live_url, featured, sort_order, created_at, updated_at
		 FROM projects WHERE slug = ?`, slug)
	return s.scanProjectRow(row)
}

func (s *SQLiteStore) ListProjects(ctx context.Context, opts model.ListOptions) ([]*model.Project, int, error) {
	s.logger.Debug("sql", "op", "list", "table", "projects", "limit", opts.Limit, "offset", opts.Offset)
	opts.Clamp()

	var conds []string
	var args []any
	if opts.Search != "" {
		conds = append(conds, `(title LIKE ? OR summary LIKE ?)`)
		args = append(args, "%"+opts.Search+"%", "%"+opts.Search+"%")
	}
	if opts.Tag != "" {
		// Tags are stored as a JSON array of strings.
		conds = append(conds, `tags LIKE ?`)
		args = append(args, `%"`+opts.Tag+`"%`)
	}
	if opts.FeaturedOnly {
		conds = append(conds, `featured = 1`)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, slug, title, summary, body, image_url, tags, repo_url, live_url, featured, sort_order, created_at, updated_at
		 FROM projects`+where+` ORDER BY sort_order ASC, created_at DESC LIMIT ? OFFSET ?`,
		append(args, opts.Limit, opts.Offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var proj model.Project
		var tagsJSON, createdAt, updatedAt string

		if err := rows.Scan(&proj.ID, &proj.Slug, &proj.Title, &proj.Summary, &proj.Body, &proj.ImageURL,
			&tagsJSON, &proj.RepoURL, &proj.LiveURL, &proj.Featured, &proj.SortOrder, &createdAt, &updatedAt); err != nil {
			return nil, 0, err
		}
		json.Unmarshal([]byte(tagsJSON), &proj.Tags)
		proj.CreatedAt = parseTime(createdAt)
		proj.UpdatedAt = parseTime(updatedAt)

		projects = append(projects, &proj)
	}
	return projects, total, rows.Err()
}

func (s *SQLiteStore) UpdateProject(ctx context.Context, proj *model.Project) error {
	s.logger.Debug("sql", "op", "update", "table", "projects", "id", proj.ID)

	tagsJSON, err := json.Marshal(proj.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE projects SET slug=?, title=?, summary=?, body=?, image_url=?, tags=?,
		 repo_url=?, live_url=?, featured=?, sort_order=?, updated_at=? WHERE id=?`,
		proj.Slug, proj.Title, proj.Summary, proj.Body, proj.ImageURL, string(tagsJSON),
		proj.RepoURL, proj.LiveURL, proj.Featured, proj.SortOrder,
		proj.UpdatedAt.Format(time.RFC3339Nano), proj.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("project %s not found", proj.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "projects", "id", id)

	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("project %s not found", id)
	}
	return nil
}

// --- Client CRUD ---

func (s *SQLiteStore) CreateClient(ctx context.Context, cl *model.Client) error {
	s.logger.Debug("sql", "op", "insert", "table", "clients", "id", cl.ID)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO clients (id, name, company, quote, avatar_url, website, sort_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		cl.ID, cl.Name, cl.Company, cl.Quote, cl.AvatarURL, cl.Website, cl.SortOrder,
		cl.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) GetClient(ctx context.Context, id string) (*model.Client, error) {
	s.logger.Debug("sql", "op", "select", "table", "clients", "id", id)

	var cl model.Client
	var createdAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, company, quote, avatar_url, website, sort_order, created_at
		 FROM clients WHERE id = ?`, id,
	).Scan(&cl.ID, &cl.Name, &cl.Company, &cl.Quote, &cl.AvatarURL, &cl.Website, &cl.SortOrder, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cl.CreatedAt = parseTime(createdAt)

	return &cl, nil
}

func (s *SQLiteStore) ListClients(ctx context.Context, opts model.ListOptions) ([]*model.Client, int, error) {
	s.logger.Debug("sql", "op", "list", "table", "clients", "limit", opts.Limit, "offset", opts.Offset)
	opts.Clamp()

	where, args := "", []any{}
	if opts.Search != "" {
		where = ` WHERE (name LIKE ? OR company LIKE ?)`
		args = append(args, "%"+opts.Search+"%", "%"+opts.Search+"%")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, company, quote, avatar_url, website, sort_order, created_at
		 FROM clients`+where+` ORDER BY sort_order ASC, created_at DESC LIMIT ? OFFSET ?`,
		append(args, opts.Limit, opts.Offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clients []*model.Client
	for rows.Next() {
		var cl model.Client
		var createdAt string

		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Company, &cl.Quote, &cl.AvatarURL, &cl.Website, &cl.SortOrder, &createdAt); err != nil {
			return nil, 0, err
		}
		cl.CreatedAt = parseTime(createdAt)

		clients = append(clients, &cl)
	}
	return clients, total, rows.Err()
}

func (s *SQLiteStore) UpdateClient(ctx context.Context, cl *model.Client) error {
	s.logger.Debug("sql", "op", "update", "table", "clients", "id", cl.ID)

	result, err := s.db.ExecContext(ctx,
		`UPDATE clients SET name=?, company=?, quote=?, avatar_url=?, website=?, sort_order=? WHERE id=?`,
		cl.Name, cl.Company, cl.Quote, cl.AvatarURL, cl.Website, cl.SortOrder, cl.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("client %s not found", cl.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteClient(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "clients", "id", id)

	result, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("client %s not found", id)
	}
	return nil
}

// --- Post CRUD ---

func (s *SQLiteStore) CreatePost(ctx context.Context, post *model.Post) error {
	s.logger.Debug("sql", "op", "insert", "table", "posts", "id", post.ID)

	tagsJSON, err := json.Marshal(post.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	var publishedAt any
	if post.PublishedAt != nil {
		publishedAt = post.PublishedAt.Format(time.RFC3339Nano)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO posts (id, slug, title, excerpt, body, cover_url, tags, published, published_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.Slug, post.Title, post.Excerpt, post.Body, post.CoverURL,
		string(tagsJSON), post.Published, publishedAt,
		post.CreatedAt.Format(time.RFC3339Nano), post.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("post slug %s already exists", post.Slug)
	}
	return err
}

func (s *SQLiteStore) scanPostRow(row *sql.Row) (*model.Post, error) {
	var post model.Post
	var tagsJSON, createdAt, updatedAt string
	var publishedAt sql.NullString

	err := row.Scan(&post.ID, &post.Slug, &post.Title, &post.Excerpt, &post.Body, &post.CoverURL,
		&tagsJSON, &post.Published, &publishedAt, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &post.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	if publishedAt.Valid {
		t := parseTime(publishedAt.String)
		post.PublishedAt = &t
	}
	post.CreatedAt = parseTime(createdAt)
	post.UpdatedAt = parseTime(updatedAt)
	return &post, nil
}

func (s *SQLiteStore) GetPost(ctx context.Context, id string) (*model.Post, error) {
	s.logger.Debug("sql", "op", "select", "table", "posts", "id", id)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, slug, title, excerpt, body, cover_url, tags, published, published_at, created_at, updated_at
		 FROM posts WHERE id = ?`, id)
	return s.scanPostRow(row)
}

func (s *SQLiteStore) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	s.logger.Debug("sql", "op", "select_by_slug", "table", "posts", "slug", slug)

	row := s.db.QueryRowContext(ctx,
		`SELECT id, slug, title, excerpt, body, cover_url, tags, published, published_at, created_at, updated_at
		 FROM posts WHERE slug = ?`, slug)
	return s.scanPostRow(row)
}

func (s *SQLiteStore) ListPosts(ctx context.Context, opts model.ListOptions) ([]*model.Post, int, error) {
	s.logger.Debug("sql", "op", "list", "table", "posts", "limit", opts.Limit, "offset", opts.Offset)
	opts.Clamp()

	var conds []string
	var args []any
	if opts.Search != "" {
		conds = append(conds, `(title LIKE ? OR excerpt LIKE ?)`)
		args = append(args, "%"+opts.Search+"%", "%"+opts.Search+"%")
	}
	if opts.Tag != "" {
		conds = append(conds, `tags LIKE ?`)
		args = append(args, `%"`+opts.Tag+`"%`)
	}
	if opts.PublishedOnly {
		conds = append(conds, `published = 1`)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, slug, title, excerpt, body, cover_url, tags, published, published_at, created_at, updated_at
		 FROM posts`+where+` ORDER BY COALESCE(published_at, created_at) DESC LIMIT ? OFFSET ?`,
		append(args, opts.Limit, opts.Offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		var tagsJSON, createdAt, updatedAt string
		var publishedAt sql.NullString

		if err := rows.Scan(&post.ID, &post.Slug, &post.Title, &post.Excerpt, &post.Body, &post.CoverURL,
			&tagsJSON, &post.Published, &publishedAt, &createdAt, &updatedAt); err != nil {
			return nil, 0, err
		}
		json.Unmarshal([]byte(tagsJSON), &post.Tags)
		if publishedAt.Valid {
			t := parseTime(publishedAt.String)
			post.PublishedAt = &t
		}
		post.CreatedAt = parseTime(createdAt)
		post.UpdatedAt = parseTime(updatedAt)

		posts = append(posts, &post)
	}
	return posts, total, rows.Err()
}

func (s *SQLiteStore) UpdatePost(ctx context.Context, post *model.Post) error {
	s.logger.Debug("sql", "op", "update", "table", "posts", "id", post.ID)

	tagsJSON, err := json.Marshal(post.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	var publishedAt any
	if post.PublishedAt != nil {
		publishedAt = post.PublishedAt.Format(time.RFC3339Nano)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE posts SET slug=?, title=?, excerpt=?, body=?, cover_url=?, tags=?,
		 published=?, published_at=?, updated_at=? WHERE id=?`,
		post.Slug, post.Title, post.Excerpt, post.Body, post.CoverURL, string(tagsJSON),
		post.Published, publishedAt, post.UpdatedAt.Format(time.RFC3339Nano), post.ID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("post %s not found", post.ID)
	}
	return nil
}

func (s *SQLiteStore) DeletePost(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "posts", "id", id)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("post %s not found", id)
	}
	return nil
}

// --- Contact messages ---

func (s *SQLiteStore) CreateMessage(ctx context.Context, msg *model.ContactMessage) error {
	s.logger.Debug("sql", "op", "insert", "table", "messages", "id", msg.ID)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, name, email, subject, body, read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Body, msg.Read,
		msg.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) GetMessage(ctx context.Context, id string) (*model.ContactMessage, error) {
	s.logger.Debug("sql", "op", "select", "table", "messages", "id", id)

	var msg model.ContactMessage
	var createdAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, subject, body, read, created_at
		 FROM messages WHERE id = ?`, id,
	).Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Body, &msg.Read, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	msg.CreatedAt = parseTime(createdAt)

	return &msg, nil
}

func (s *SQLiteStore) ListMessages(ctx context.Context, opts model.ListOptions) ([]*model.ContactMessage, int, error) {
	s.logger.Debug("sql", "op", "list", "table", "messages", "limit", opts.Limit, "offset", opts.Offset)
	opts.Clamp()

	var conds []string
	var args []any
	if opts.Search != "" {
		conds = append(conds, `(name LIKE ? OR email LIKE ? OR subject LIKE ?)`)
		args = append(args, "%"+opts.Search+"%", "%"+opts.Search+"%", "%"+opts.Search+"%")
	}
	if opts.UnreadOnly {
		conds = append(conds, `read = 0`)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, subject, body, read, created_at
		 FROM messages`+where+` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		append(args, opts.Limit, opts.Offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var msg model.ContactMessage
		var createdAt string

		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Body, &msg.Read, &createdAt); err != nil {
			return nil, 0, err
		}
		msg.CreatedAt = parseTime(createdAt)

		messages = append(messages, &msg)
	}
	return messages, total, rows.Err()
}

func (s *SQLiteStore) MarkMessageRead(ctx context.Context, id string, read bool) error {
	s.logger.Debug("sql", "op", "mark_read", "table", "messages", "id", id, "read", read)

	result, err := s.db.ExecContext(ctx, `UPDATE messages SET read=? WHERE id=?`, read, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("message %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) DeleteMessage(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "messages", "id", id)

	result, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("message %s not found", id)
	}
	return nil
}
