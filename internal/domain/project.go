package domain

import "time"

// ProjectType classifies a portfolio entry.
type ProjectType string

const (
	ProjectTypeResidential   ProjectType = "residential"
	ProjectTypeCommercial    ProjectType = "commercial"
	ProjectTypeInstitutional ProjectType = "institutional"
)

// Valid reports whether t is one of the known project types.
func (t ProjectType) Valid() bool {
	switch t {
	case ProjectTypeResidential, ProjectTypeCommercial, ProjectTypeInstitutional:
		return true
	}
	return false
}

// Project is a completed-work portfolio entry shown on the public site.
type Project struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	ProjectType   ProjectType `json:"projectType"`
	ImageURL      string      `json:"imageUrl"`
	ThumbnailURL  string      `json:"thumbnailUrl,omitempty"`
	CompletedDate string      `json:"completedDate"`
	Featured      bool        `json:"featured"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// ProjectParams contains the validated parameters for creating a project.
type ProjectParams struct {
	Title         string
	Description   string
	ProjectType   ProjectType
	ImageURL      string
	CompletedDate string
	Featured      bool
}
