package store

import (
	"context"
	"database/sql"
	"strings"
)

// schema contains the DDL for all Folio tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'subscriber',
		created_at    TEXT NOT NULL,
		last_login_at TEXT NOT NULL DEFAULT ''
	)`,

	// Single-row table; the row id is always 1.
	`CREATE TABLE IF NOT EXISTS profile (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		name       TEXT NOT NULL,
		headline   TEXT NOT NULL DEFAULT '',
		bio        TEXT NOT NULL DEFAULT '',
		avatar_url TEXT NOT NULL DEFAULT '',
		skills     TEXT NOT NULL DEFAULT '[]',
		services   TEXT NOT NULL DEFAULT '[]',
		socials    TEXT NOT NULL DEFAULT '[]',
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		slug       TEXT NOT NULL UNIQUE,
		title      TEXT NOT NULL,
		summary    TEXT NOT NULL DEFAULT '',
		body       TEXT NOT NULL DEFAULT '',
		image_url  TEXT NOT NULL DEFAULT '',
		tags       TEXT NOT NULL DEFAULT '[]',
		repo_url   TEXT NOT NULL DEFAULT '',
		featured   INTEGER NOT NULL DEFAULT 0,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		company    TEXT NOT NULL DEFAULT '',
		quote      TEXT NOT NULL,
		avatar_url TEXT NOT NULL DEFAULT '',
		website    TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS posts (
		id           TEXT PRIMARY KEY,
		slug         TEXT NOT NULL UNIQUE,
		title        TEXT NOT NULL,
		excerpt      TEXT NOT NULL DEFAULT '',
		body         TEXT NOT NULL,
		cover_url    TEXT NOT NULL DEFAULT '',
		tags         TEXT NOT NULL DEFAULT '[]',
		published    INTEGER NOT NULL DEFAULT 0,
		published_at TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		subject    TEXT NOT NULL DEFAULT '',
		body       TEXT NOT NULL,
		read       INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_accounts_email ON accounts(email)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_featured ON projects(featured)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_sort_order ON projects(sort_order)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_published ON posts(published)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_published_at ON posts(published_at)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_read ON messages(read)`,
}

// alterStatements are column additions that need special handling since
// SQLite doesn't support IF NOT EXISTS for ALTER TABLE ADD COLUMN.
var alterStatements = []struct {
	table    string
	column   string
	alterSQL string
	indexSQL string // Optional index to create after column is added
}{
	{
		table:    "projects",
		column:   "live_url",
		alterSQL: "ALTER TABLE projects ADD COLUMN live_url TEXT NOT NULL DEFAULT ''",
	},
}

// migrate executes all schema DDL statements and alter migrations.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	// Execute ALTER TABLE statements idempotently.
	for _, alter := range alterStatements {
		if err := addColumnIfNotExists(ctx, db, alter.table, alter.column, alter.alterSQL); err != nil {
			return err
		}
		if alter.indexSQL != "" {
			if _, err := db.ExecContext(ctx, alter.indexSQL); err != nil {
				return err
			}
		}
	}

	return nil
}

// addColumnIfNotExists adds a column to a table if it doesn't already exist.
func addColumnIfNotExists(ctx context.Context, db *sql.DB, table, column, alterSQL string) error {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+table+")")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue *string
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			return err
		}
		if strings.EqualFold(name, column) {
			return nil // Column already exists
		}
	}

	// Column doesn't exist, add it.
	_, err = db.ExecContext(ctx, alterSQL)
	return err
}
