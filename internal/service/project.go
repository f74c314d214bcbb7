package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/repository"
	"github.com/nirmaan-labs/nirmaan/internal/storage"
)

// MaxProjectImageBytes caps uploaded portfolio photos at 10 MB.
const MaxProjectImageBytes = 10 << 20

// ProjectService defines portfolio operations.
type ProjectService interface {
	// List returns projects, optionally filtered by type.
	List(ctx context.Context, projectType string) ([]domain.Project, error)

	// ListFeatured returns projects flagged for the home page.
	ListFeatured(ctx context.Context) ([]domain.Project, error)

	// Get returns a single project.
	// Returns domain.ENOTFOUND if no project has that id.
	Get(ctx context.Context, id int64) (*domain.Project, error)

	// Create adds a portfolio entry.
	Create(ctx context.Context, params domain.ProjectParams) (*domain.Project, error)

	// AttachImage stores an uploaded photo plus a generated thumbnail
	// and updates the project's image URLs.
	AttachImage(ctx context.Context, id int64, filename, contentType string, data io.Reader) (*domain.Project, error)
}

type projectService struct {
	projects repository.ProjectStore
	files    storage.Storage
	thumbs   ThumbnailProcessor
	logger   *slog.Logger
}

// NewProjectService creates a new ProjectService instance.
func NewProjectService(projects repository.ProjectStore, files storage.Storage, thumbs ThumbnailProcessor, logger *slog.Logger) ProjectService {
	return &projectService{
		projects: projects,
		files:    files,
		thumbs:   thumbs,
		logger:   logger,
	}
}

func (s *projectService) List(ctx context.Context, projectType string) ([]domain.Project, error) {
	const op = "ProjectService.List"

	var filter domain.ProjectType
	if projectType != "" {
		filter = domain.ProjectType(strings.ToLower(projectType))
		if !filter.Valid() {
			return nil, domain.Invalid(op, "Unknown project type: "+projectType)
		}
	}

	projects, err := s.projects.ListProjects(ctx, filter)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to list projects")
	}
	return projects, nil
}

func (s *projectService) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	const op = "ProjectService.ListFeatured"

	projects, err := s.projects.ListFeaturedProjects(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to list featured projects")
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	const op = "ProjectService.Get"

	project, err := s.projects.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(op, "project", strconv.FormatInt(id, 10))
		}
		return nil, domain.Internal(err, op, "Failed to retrieve project")
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, params domain.ProjectParams) (*domain.Project, error) {
	const op = "ProjectService.Create"

	params.Title = strings.TrimSpace(params.Title)
	if params.Title == "" {
		return nil, domain.Invalid(op, "Title is required")
	}
	if !params.ProjectType.Valid() {
		return nil, domain.Invalid(op, "Unknown project type: "+string(params.ProjectType))
	}

	project, err := s.projects.CreateProject(ctx, params)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to create project")
	}

	s.logger.Info("project created", "id", project.ID, "title", project.Title)
	return project, nil
}

// AttachImage buffers the upload so it can be written to storage and
// fed to the thumbnailer from the same bytes.
func (s *projectService) AttachImage(ctx context.Context, id int64, filename, contentType string, data io.Reader) (*domain.Project, error) {
	const op = "ProjectService.AttachImage"

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	detected := storage.DetectContentType(contentType, filename, nil)
	if !storage.IsAllowedImageType(detected) {
		return nil, domain.Invalid(op, "Unsupported image type: "+detected)
	}

	raw, err := io.ReadAll(io.LimitReader(data, MaxProjectImageBytes+1))
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to read upload")
	}
	if len(raw) > MaxProjectImageBytes {
		return nil, domain.Invalid(op, "Image exceeds the 10 MB upload limit")
	}

	thumb, width, height, err := s.thumbs.GenerateThumbnail(bytes.NewReader(raw), ThumbnailMaxWidth, ThumbnailMaxHeight)
	if err != nil {
		return nil, domain.Invalid(op, "File is not a decodable image")
	}

	imageKey := storage.ProjectImageKey(id, filename)
	err = s.files.Put(ctx, imageKey, bytes.NewReader(raw), storage.PutOptions{
		ContentType: detected,
		MaxSize:     MaxProjectImageBytes,
		Public:      true,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to store image")
	}

	thumbKey := storage.ProjectThumbnailKey(id)
	err = s.files.Put(ctx, thumbKey, bytes.NewReader(thumb), storage.PutOptions{
		ContentType: "image/jpeg",
		Public:      true,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to store thumbnail")
	}

	imageURL, err := s.files.URL(ctx, imageKey, 0)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to resolve image URL")
	}
	thumbURL, err := s.files.URL(ctx, thumbKey, 0)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to resolve thumbnail URL")
	}

	if err := s.projects.UpdateProjectImage(ctx, id, imageURL, thumbURL); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(op, "project", strconv.FormatInt(id, 10))
		}
		return nil, domain.Internal(err, op, "Failed to update project")
	}

	s.logger.Info("project image attached",
		"id", id,
		"key", imageKey,
		"width", width,
		"height", height,
	)
	return s.Get(ctx, id)
}
