// Package seed populates an empty store with the initial portfolio
// and the bootstrap admin account.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/repository"
	"github.com/nirmaan-labs/nirmaan/internal/service"
	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var projectsYAML []byte

type projectSeed struct {
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	ProjectType   string `yaml:"projectType"`
	ImageURL      string `yaml:"imageUrl"`
	CompletedDate string `yaml:"completedDate"`
	Featured      bool   `yaml:"featured"`
}

type seedFile struct {
	Projects []projectSeed `yaml:"projects"`
}

// Run seeds projects and the admin user. Both steps are skipped when
// the corresponding table already has rows, so Run is safe to call on
// every startup.
func Run(ctx context.Context, store repository.Store, adminUsername, adminPassword, adminName string, logger *slog.Logger) error {
	if err := seedProjects(ctx, store, logger); err != nil {
		return err
	}
	return seedAdmin(ctx, store, adminUsername, adminPassword, adminName, logger)
}

func seedProjects(ctx context.Context, store repository.ProjectStore, logger *slog.Logger) error {
	count, err := store.CountProjects(ctx)
	if err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	var file seedFile
	if err := yaml.Unmarshal(projectsYAML, &file); err != nil {
		return fmt.Errorf("parse project seed file: %w", err)
	}

	for _, p := range file.Projects {
		projectType := domain.ProjectType(p.ProjectType)
		if !projectType.Valid() {
			return fmt.Errorf("seed project %q: unknown project type %q", p.Title, p.ProjectType)
		}
		_, err := store.CreateProject(ctx, domain.ProjectParams{
			Title:         p.Title,
			Description:   p.Description,
			ProjectType:   projectType,
			ImageURL:      p.ImageURL,
			CompletedDate: p.CompletedDate,
			Featured:      p.Featured,
		})
		if err != nil {
			return fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}

	logger.Info("seeded portfolio projects", "count", len(file.Projects))
	return nil
}

func seedAdmin(ctx context.Context, store repository.UserStore, username, password, name string, logger *slog.Logger) error {
	count, err := store.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = store.CreateUser(ctx, domain.AdminUserParams{
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		Role:         "admin",
	})
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	logger.Info("seeded admin user", "username", username)
	return nil
}
