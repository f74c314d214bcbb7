package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/service"
)

// ProjectHandler serves the public portfolio plus the admin project
// management endpoints.
//
// Routes handled:
// - GET  /api/projects                  -> List
// - GET  /api/projects/featured         -> ListFeatured
// - GET  /api/projects/{id}             -> Get
// - POST /api/admin/projects            -> Create (auth required)
// - POST /api/admin/projects/{id}/image -> UploadImage (auth required)
type ProjectHandler struct {
	projectService service.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler instance.
func NewProjectHandler(projectService service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// List returns all projects, filtered by the optional "type" query
// param.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// ListFeatured returns the home-page projects.
func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListFeatured(r.Context())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get returns a single project by id.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "ProjectHandler.Get"

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Project id must be a number"))
		return
	}

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create adds a portfolio entry.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "ProjectHandler.Create"

	var payload struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		ProjectType   string `json:"projectType"`
		ImageURL      string `json:"imageUrl"`
		CompletedDate string `json:"completedDate"`
		Featured      bool   `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Request body must be valid JSON"))
		return
	}

	project, err := h.projectService.Create(r.Context(), domain.ProjectParams{
		Title:         payload.Title,
		Description:   payload.Description,
		ProjectType:   domain.ProjectType(payload.ProjectType),
		ImageURL:      payload.ImageURL,
		CompletedDate: payload.CompletedDate,
		Featured:      payload.Featured,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// UploadImage accepts a multipart photo upload for a project.
func (h *ProjectHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	const op = "ProjectHandler.UploadImage"

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Project id must be a number"))
		return
	}

	if err := r.ParseMultipartForm(service.MaxProjectImageBytes); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Expected a multipart form upload"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Missing image file field"))
		return
	}
	defer file.Close()

	project, err := h.projectService.AttachImage(r.Context(), id,
		header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}
