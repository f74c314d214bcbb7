// Package memory implements the repository contract with mutex-guarded
// in-process maps. It is the default backend: a restart loses all data,
// which is acceptable for the marketing site's lead inbox.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/repository"
)

// Store holds everything in memory. IDs are monotonically increasing
// per entity type.
type Store struct {
	mu sync.RWMutex

	contacts      map[int64]domain.ContactForm
	nextContactID int64

	projects      map[int64]domain.Project
	nextProjectID int64

	users      map[int64]domain.AdminUser
	nextUserID int64

	sessions map[string]domain.Session // keyed by token hash
}

var _ repository.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		contacts:      make(map[int64]domain.ContactForm),
		nextContactID: 1,
		projects:      make(map[int64]domain.Project),
		nextProjectID: 1,
		users:         make(map[int64]domain.AdminUser),
		nextUserID:    1,
		sessions:      make(map[string]domain.Session),
	}
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }

// =============================================================================
// Contact forms
// =============================================================================

func (s *Store) CreateContactForm(_ context.Context, params domain.ContactFormParams) (*domain.ContactForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form := domain.ContactForm{
		ID:          s.nextContactID,
		Name:        params.Name,
		Phone:       params.Phone,
		Email:       params.Email,
		City:        params.City,
		LandSize:    params.LandSize,
		North:       params.North,
		South:       params.South,
		East:        params.East,
		West:        params.West,
		LandFacing:  params.LandFacing,
		ProjectType: params.ProjectType,
		Message:     params.Message,
		Source:      params.Source,
		CreatedAt:   time.Now().UTC(),
		IsProcessed: false,
	}
	s.contacts[form.ID] = form
	s.nextContactID++

	return &form, nil
}

func (s *Store) ListContactForms(_ context.Context) ([]domain.ContactForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	forms := make([]domain.ContactForm, 0, len(s.contacts))
	for id := int64(1); id < s.nextContactID; id++ {
		if form, ok := s.contacts[id]; ok {
			forms = append(forms, form)
		}
	}
	return forms, nil
}

func (s *Store) GetContactForm(_ context.Context, id int64) (*domain.ContactForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	form, ok := s.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &form, nil
}

func (s *Store) MarkContactFormProcessed(_ context.Context, id int64) (*domain.ContactForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	form.IsProcessed = true
	s.contacts[id] = form
	return &form, nil
}

// =============================================================================
// Projects
// =============================================================================

func (s *Store) CreateProject(_ context.Context, params domain.ProjectParams) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := domain.Project{
		ID:            s.nextProjectID,
		Title:         params.Title,
		Description:   params.Description,
		ProjectType:   params.ProjectType,
		ImageURL:      params.ImageURL,
		CompletedDate: params.CompletedDate,
		Featured:      params.Featured,
		CreatedAt:     time.Now().UTC(),
	}
	s.projects[project.ID] = project
	s.nextProjectID++

	return &project, nil
}

func (s *Store) ListProjects(_ context.Context, projectType domain.ProjectType) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]domain.Project, 0, len(s.projects))
	for id := int64(1); id < s.nextProjectID; id++ {
		p, ok := s.projects[id]
		if !ok {
			continue
		}
		if projectType != "" && p.ProjectType != projectType {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (s *Store) ListFeaturedProjects(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]domain.Project, 0)
	for id := int64(1); id < s.nextProjectID; id++ {
		if p, ok := s.projects[id]; ok && p.Featured {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (s *Store) GetProject(_ context.Context, id int64) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *Store) UpdateProjectImage(_ context.Context, id int64, imageURL, thumbnailURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.ImageURL = imageURL
	p.ThumbnailURL = thumbnailURL
	s.projects[id] = p
	return nil
}

func (s *Store) CountProjects(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.projects)), nil
}

// =============================================================================
// Users
// =============================================================================

func (s *Store) CreateUser(_ context.Context, params domain.AdminUserParams) (*domain.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == params.Username {
			return nil, repository.ErrConflict
		}
	}

	user := domain.AdminUser{
		ID:           s.nextUserID,
		Username:     params.Username,
		PasswordHash: params.PasswordHash,
		Name:         params.Name,
		Role:         params.Role,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[user.ID] = user
	s.nextUserID++

	return &user, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) GetUserByID(_ context.Context, id int64) (*domain.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *Store) CountUsers(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// =============================================================================
// Sessions
// =============================================================================

func (s *Store) CreateSession(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.TokenHash] = session
	return nil
}

func (s *Store) GetSessionByTokenHash(_ context.Context, tokenHash string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[tokenHash]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

func (s *Store) DeleteSessionByTokenHash(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenHash)
	return nil
}

func (s *Store) DeleteExpiredSessions(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var deleted int64
	for hash, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, hash)
			deleted++
		}
	}
	return deleted, nil
}
