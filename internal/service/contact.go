package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/repository"
)

// placeholderField fills the full-schema columns that the simplified
// hero form does not collect, so dashboard exports stay rectangular.
const placeholderField = "Not provided"

// ContactService defines lead-capture operations.
type ContactService interface {
	// Create stores a full contact-form submission.
	Create(ctx context.Context, params domain.ContactFormParams) (*domain.ContactForm, error)

	// CreateFromHero stores a simplified hero/popup submission,
	// filling the remaining full-schema fields with placeholders.
	CreateFromHero(ctx context.Context, params domain.HeroContactParams) (*domain.ContactForm, error)

	// List returns all stored submissions, oldest first.
	List(ctx context.Context) ([]domain.ContactForm, error)

	// MarkProcessed flags a submission as handled.
	// Returns domain.ENOTFOUND if no submission has that id.
	MarkProcessed(ctx context.Context, id int64) (*domain.ContactForm, error)

	// ExportCSV writes all submissions to w as CSV, header row first.
	ExportCSV(ctx context.Context, w io.Writer) error
}

type contactService struct {
	contacts repository.ContactStore
	logger   *slog.Logger
}

// NewContactService creates a new ContactService instance.
func NewContactService(contacts repository.ContactStore, logger *slog.Logger) ContactService {
	return &contactService{
		contacts: contacts,
		logger:   logger,
	}
}

func (s *contactService) Create(ctx context.Context, params domain.ContactFormParams) (*domain.ContactForm, error) {
	const op = "ContactService.Create"

	params.Name = strings.TrimSpace(params.Name)
	params.Phone = strings.TrimSpace(params.Phone)
	params.Email = strings.TrimSpace(params.Email)
	params.City = strings.TrimSpace(params.City)
	if params.Source == "" {
		params.Source = domain.ContactSourceFull
	}

	form, err := s.contacts.CreateContactForm(ctx, params)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to store contact form")
	}

	s.logger.Info("contact form received",
		"id", form.ID,
		"source", form.Source,
		"project_type", form.ProjectType,
	)
	return form, nil
}

func (s *contactService) CreateFromHero(ctx context.Context, params domain.HeroContactParams) (*domain.ContactForm, error) {
	source := params.Source
	if source == "" {
		source = domain.ContactSourceHero
	}

	placeholder := domain.Dimension{Feet: placeholderField, Inches: ""}
	return s.Create(ctx, domain.ContactFormParams{
		Name:        params.Name,
		Phone:       params.Phone,
		Email:       params.Email,
		City:        placeholderField,
		LandSize:    placeholderField,
		North:       placeholder,
		South:       placeholder,
		East:        placeholder,
		West:        placeholder,
		LandFacing:  placeholderField,
		ProjectType: params.ProjectType,
		Message:     params.Message,
		Source:      source,
	})
}

func (s *contactService) List(ctx context.Context) ([]domain.ContactForm, error) {
	const op = "ContactService.List"

	forms, err := s.contacts.ListContactForms(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to list contact forms")
	}
	return forms, nil
}

func (s *contactService) MarkProcessed(ctx context.Context, id int64) (*domain.ContactForm, error) {
	const op = "ContactService.MarkProcessed"

	form, err := s.contacts.MarkContactFormProcessed(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, domain.NotFound(op, "contact form", strconv.FormatInt(id, 10))
		}
		return nil, domain.Internal(err, op, "Failed to update contact form")
	}

	s.logger.Info("contact form processed", "id", id)
	return form, nil
}

var csvHeader = []string{
	"id", "name", "phone", "email", "city", "land_size",
	"north", "south", "east", "west",
	"land_facing", "project_type", "message", "source",
	"created_at", "is_processed",
}

func (s *contactService) ExportCSV(ctx context.Context, w io.Writer) error {
	const op = "ContactService.ExportCSV"

	forms, err := s.contacts.ListContactForms(ctx)
	if err != nil {
		return domain.Internal(err, op, "Failed to list contact forms")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return domain.Internal(err, op, "Failed to write CSV")
	}
	for _, f := range forms {
		record := []string{
			strconv.FormatInt(f.ID, 10),
			f.Name,
			f.Phone,
			f.Email,
			f.City,
			f.LandSize,
			formatDimension(f.North),
			formatDimension(f.South),
			formatDimension(f.East),
			formatDimension(f.West),
			f.LandFacing,
			f.ProjectType,
			f.Message,
			f.Source,
			f.CreatedAt.Format(time.RFC3339),
			strconv.FormatBool(f.IsProcessed),
		}
		if err := cw.Write(record); err != nil {
			return domain.Internal(err, op, "Failed to write CSV")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return domain.Internal(err, op, "Failed to flush CSV")
	}
	return nil
}

func formatDimension(d domain.Dimension) string {
	if d.Inches == "" {
		return d.Feet
	}
	return fmt.Sprintf("%s ft %s in", d.Feet, d.Inches)
}
