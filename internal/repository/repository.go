// Package repository defines the storage contract for the application.
//
// Services depend only on the Store interface; the concrete backend
// (in-memory maps, sqlite, or postgres) is selected at startup and
// injected, so a real datastore can be substituted without touching
// any handler or service.
package repository

import (
	"context"
	"errors"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// Services translate it into a domain not-found error.
var ErrNotFound = errors.New("repository: record not found")

// ErrConflict is returned when a uniqueness constraint is violated.
var ErrConflict = errors.New("repository: record already exists")

// ContactStore persists lead-capture submissions.
type ContactStore interface {
	CreateContactForm(ctx context.Context, params domain.ContactFormParams) (*domain.ContactForm, error)
	ListContactForms(ctx context.Context) ([]domain.ContactForm, error)
	GetContactForm(ctx context.Context, id int64) (*domain.ContactForm, error)
	MarkContactFormProcessed(ctx context.Context, id int64) (*domain.ContactForm, error)
}

// ProjectStore persists the portfolio.
type ProjectStore interface {
	CreateProject(ctx context.Context, params domain.ProjectParams) (*domain.Project, error)
	ListProjects(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error)
	ListFeaturedProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	UpdateProjectImage(ctx context.Context, id int64, imageURL, thumbnailURL string) error
	CountProjects(ctx context.Context) (int64, error)
}

// UserStore persists admin accounts.
type UserStore interface {
	CreateUser(ctx context.Context, params domain.AdminUserParams) (*domain.AdminUser, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	GetUserByID(ctx context.Context, id int64) (*domain.AdminUser, error)
	CountUsers(ctx context.Context) (int64, error)
}

// SessionStore persists admin sessions, keyed by the SHA-256 hash of
// the session token.
type SessionStore interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// Store is the full storage contract.
type Store interface {
	ContactStore
	ProjectStore
	UserStore
	SessionStore

	// Close releases any underlying resources.
	Close() error
}
