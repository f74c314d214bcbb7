// Package sqlite implements the repository contract on a single-file
// sqlite database, for deployments that want submissions to survive a
// restart without running a database server.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/repository"
	_ "modernc.org/sqlite"
)

// Store wraps a sqlite database handle.
type Store struct {
	db *sql.DB
}

var _ repository.Store = (*Store)(nil)

// Open opens (creating if necessary) the database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// sqlite handles one writer at a time; serialize access through a
	// single connection to avoid SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// =============================================================================
// Contact forms
// =============================================================================

const contactColumns = `id, name, phone, email, city, land_size,
	north_feet, north_inches, south_feet, south_inches,
	east_feet, east_inches, west_feet, west_inches,
	land_facing, project_type, message, source, created_at, is_processed`

func scanContactForm(row interface{ Scan(...any) error }) (*domain.ContactForm, error) {
	var form domain.ContactForm
	var createdAt int64
	err := row.Scan(
		&form.ID, &form.Name, &form.Phone, &form.Email, &form.City, &form.LandSize,
		&form.North.Feet, &form.North.Inches, &form.South.Feet, &form.South.Inches,
		&form.East.Feet, &form.East.Inches, &form.West.Feet, &form.West.Inches,
		&form.LandFacing, &form.ProjectType, &form.Message, &form.Source,
		&createdAt, &form.IsProcessed,
	)
	if err != nil {
		return nil, err
	}
	form.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &form, nil
}

func (s *Store) CreateContactForm(ctx context.Context, params domain.ContactFormParams) (*domain.ContactForm, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_forms (
			name, phone, email, city, land_size,
			north_feet, north_inches, south_feet, south_inches,
			east_feet, east_inches, west_feet, west_inches,
			land_facing, project_type, message, source, created_at, is_processed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		params.Name, params.Phone, params.Email, params.City, params.LandSize,
		params.North.Feet, params.North.Inches, params.South.Feet, params.South.Inches,
		params.East.Feet, params.East.Inches, params.West.Feet, params.West.Inches,
		params.LandFacing, params.ProjectType, params.Message, params.Source,
		now.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact form: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("contact form id: %w", err)
	}
	return s.GetContactForm(ctx, id)
}

func (s *Store) ListContactForms(ctx context.Context) ([]domain.ContactForm, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contact_forms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list contact forms: %w", err)
	}
	defer rows.Close()

	var forms []domain.ContactForm
	for rows.Next() {
		form, err := scanContactForm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact form: %w", err)
		}
		forms = append(forms, *form)
	}
	return forms, rows.Err()
}

func (s *Store) GetContactForm(ctx context.Context, id int64) (*domain.ContactForm, error) {
	form, err := scanContactForm(s.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contact_forms WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact form: %w", err)
	}
	return form, nil
}

func (s *Store) MarkContactFormProcessed(ctx context.Context, id int64) (*domain.ContactForm, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE contact_forms SET is_processed = 1 WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("mark contact form processed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}
	return s.GetContactForm(ctx, id)
}

// =============================================================================
// Projects
// =============================================================================

const projectColumns = `id, title, description, project_type, image_url,
	thumbnail_url, completed_date, featured, created_at`

func scanProject(row interface{ Scan(...any) error }) (*domain.Project, error) {
	var p domain.Project
	var createdAt int64
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ProjectType,
		&p.ImageURL, &p.ThumbnailURL, &p.CompletedDate, &p.Featured, &createdAt)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &p, nil
}

func (s *Store) CreateProject(ctx context.Context, params domain.ProjectParams) (*domain.Project, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (title, description, project_type, image_url,
			thumbnail_url, completed_date, featured, created_at)
		VALUES (?, ?, ?, ?, '', ?, ?, ?)`,
		params.Title, params.Description, params.ProjectType, params.ImageURL,
		params.CompletedDate, params.Featured, now.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("project id: %w", err)
	}
	return s.GetProject(ctx, id)
}

func (s *Store) ListProjects(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []any
	if projectType != "" {
		query += ` WHERE project_type = ?`
		args = append(args, projectType)
	}
	query += ` ORDER BY id`

	return s.queryProjects(ctx, query, args...)
}

func (s *Store) ListFeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	return s.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE featured = 1 ORDER BY id`)
}

func (s *Store) queryProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *Store) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := scanProject(s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (s *Store) UpdateProjectImage(ctx context.Context, id int64, imageURL, thumbnailURL string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET image_url = ?, thumbnail_url = ? WHERE id = ?`,
		imageURL, thumbnailURL, id)
	if err != nil {
		return fmt.Errorf("update project image: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}

// =============================================================================
// Users
// =============================================================================

func (s *Store) CreateUser(ctx context.Context, params domain.AdminUserParams) (*domain.AdminUser, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO admin_users (username, password_hash, name, role, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		params.Username, params.PasswordHash, params.Name, params.Role, now.UnixMilli(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, repository.ErrConflict
		}
		return nil, fmt.Errorf("insert admin user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("admin user id: %w", err)
	}
	return s.GetUserByID(ctx, id)
}

func scanUser(row interface{ Scan(...any) error }) (*domain.AdminUser, error) {
	var u domain.AdminUser
	var createdAt int64
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Role, &createdAt)
	if err != nil {
		return nil, err
	}
	u.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, name, role, created_at
		 FROM admin_users WHERE username = ?`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, name, role, created_at
		 FROM admin_users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count)
	return count, err
}

// =============================================================================
// Sessions
// =============================================================================

func (s *Store) CreateSession(ctx context.Context, session domain.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (token_hash, user_id, expires_at, created_at)
		VALUES (?, ?, ?, ?)`,
		session.TokenHash, session.UserID,
		session.ExpiresAt.UnixMilli(), session.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *Store) GetSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	var session domain.Session
	var expiresAt, createdAt int64
	err := s.db.QueryRowContext(ctx, `
		SELECT token_hash, user_id, expires_at, created_at
		FROM sessions WHERE token_hash = ?`, tokenHash).
		Scan(&session.TokenHash, &session.UserID, &expiresAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	session.ExpiresAt = time.UnixMilli(expiresAt).UTC()
	session.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &session, nil
}

func (s *Store) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = ?`, tokenHash)
	return err
}

func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, time.Now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
