// Package postgres implements the repository contract on PostgreSQL
// via pgx, with embedded goose migrations applied at startup.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/repository"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store wraps a postgres database handle.
type Store struct {
	db *sql.DB
}

var _ repository.Store = (*Store)(nil)

// Open connects to the database at url, verifies the connection and
// runs pending migrations.
func Open(ctx context.Context, url string) (*Store, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
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
	err := row.Scan(
		&form.ID, &form.Name, &form.Phone, &form.Email, &form.City, &form.LandSize,
		&form.North.Feet, &form.North.Inches, &form.South.Feet, &form.South.Inches,
		&form.East.Feet, &form.East.Inches, &form.West.Feet, &form.West.Inches,
		&form.LandFacing, &form.ProjectType, &form.Message, &form.Source,
		&form.CreatedAt, &form.IsProcessed,
	)
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *Store) CreateContactForm(ctx context.Context, params domain.ContactFormParams) (*domain.ContactForm, error) {
	form, err := scanContactForm(s.db.QueryRowContext(ctx, `
		INSERT INTO contact_forms (
			name, phone, email, city, land_size,
			north_feet, north_inches, south_feet, south_inches,
			east_feet, east_inches, west_feet, west_inches,
			land_facing, project_type, message, source
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+contactColumns,
		params.Name, params.Phone, params.Email, params.City, params.LandSize,
		params.North.Feet, params.North.Inches, params.South.Feet, params.South.Inches,
		params.East.Feet, params.East.Inches, params.West.Feet, params.West.Inches,
		params.LandFacing, params.ProjectType, params.Message, params.Source,
	))
	if err != nil {
		return nil, fmt.Errorf("insert contact form: %w", err)
	}
	return form, nil
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
		`SELECT `+contactColumns+` FROM contact_forms WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact form: %w", err)
	}
	return form, nil
}

func (s *Store) MarkContactFormProcessed(ctx context.Context, id int64) (*domain.ContactForm, error) {
	form, err := scanContactForm(s.db.QueryRowContext(ctx, `
		UPDATE contact_forms SET is_processed = TRUE WHERE id = $1
		RETURNING `+contactColumns, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mark contact form processed: %w", err)
	}
	return form, nil
}

// =============================================================================
// Projects
// =============================================================================

const projectColumns = `id, title, description, project_type, image_url,
	thumbnail_url, completed_date, featured, created_at`

func scanProject(row interface{ Scan(...any) error }) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ProjectType,
		&p.ImageURL, &p.ThumbnailURL, &p.CompletedDate, &p.Featured, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProject(ctx context.Context, params domain.ProjectParams) (*domain.Project, error) {
	p, err := scanProject(s.db.QueryRowContext(ctx, `
		INSERT INTO projects (title, description, project_type, image_url, completed_date, featured)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+projectColumns,
		params.Title, params.Description, params.ProjectType, params.ImageURL,
		params.CompletedDate, params.Featured,
	))
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (s *Store) ListProjects(ctx context.Context, projectType domain.ProjectType) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []any
	if projectType != "" {
		query += ` WHERE project_type = $1`
		args = append(args, projectType)
	}
	query += ` ORDER BY id`
	return s.queryProjects(ctx, query, args...)
}

func (s *Store) ListFeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	return s.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE featured ORDER BY id`)
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
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
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
		`UPDATE projects SET image_url = $1, thumbnail_url = $2 WHERE id = $3`,
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

func scanUser(row interface{ Scan(...any) error }) (*domain.AdminUser, error) {
	var u domain.AdminUser
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, params domain.AdminUserParams) (*domain.AdminUser, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `
		INSERT INTO admin_users (username, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, password_hash, name, role, created_at`,
		params.Username, params.PasswordHash, params.Name, params.Role,
	))
	if err != nil {
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate") {
			return nil, repository.ErrConflict
		}
		return nil, fmt.Errorf("insert admin user: %w", err)
	}
	return u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, name, role, created_at
		FROM admin_users WHERE username = $1`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, name, role, created_at
		FROM admin_users WHERE id = $1`, id))
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
		VALUES ($1, $2, $3, $4)`,
		session.TokenHash, session.UserID, session.ExpiresAt, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *Store) GetSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	var session domain.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT token_hash, user_id, expires_at, created_at
		FROM sessions WHERE token_hash = $1`, tokenHash).
		Scan(&session.TokenHash, &session.UserID, &session.ExpiresAt, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

func (s *Store) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash)
	return err
}

func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
