package store

import (
	"context"

	"github.com/me/folio/pkg/model"
)

// Store defines the persistence layer for Folio entities.
type Store interface {
	// Account CRUD
	CreateAccount(ctx context.Context, acct *model.Account) error
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	ListAccounts(ctx context.Context, opts model.ListOptions) ([]*model.Account, int, error)
	UpdateAccount(ctx context.Context, acct *model.Account) error
	DeleteAccount(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string) error

	// Profile (single row, replaced in place)
	GetProfile(ctx context.Context) (*model.Profile, error)
	SaveProfile(ctx context.Context, p *model.Profile) error

	// Project CRUD
	CreateProject(ctx context.Context, proj *model.Project) error
	GetProject(ctx context.Context, id string) (*model.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error)
	ListProjects(ctx context.Context, opts model.ListOptions) ([]*model.Project, int, error)
	UpdateProject(ctx context.Context, proj *model.Project) error
	DeleteProject(ctx context.Context, id string) error

	// Client CRUD
	CreateClient(ctx context.Context, cl *model.Client) error
	GetClient(ctx context.Context, id string) (*model.Client, error)
	ListClients(ctx context.Context, opts model.ListOptions) ([]*model.Client, int, error)
	UpdateClient(ctx context.Context, cl *model.Client) error
	DeleteClient(ctx context.Context, id string) error

	// Post CRUD
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id string) (*model.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	ListPosts(ctx context.Context, opts model.ListOptions) ([]*model.Post, int, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id string) error

	// Contact messages
	CreateMessage(ctx context.Context, msg *model.ContactMessage) error
	GetMessage(ctx context.Context, id string) (*model.ContactMessage, error)
	ListMessages(ctx context.Context, opts model.ListOptions) ([]*model.ContactMessage, int, error)
	MarkMessageRead(ctx context.Context, id string, read bool) error
	DeleteMessage(ctx context.Context, id string) error

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
