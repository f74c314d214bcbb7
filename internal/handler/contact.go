package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/metrics"
	"github.com/nirmaan-labs/nirmaan/internal/schema"
	"github.com/nirmaan-labs/nirmaan/internal/service"
)

// maxContactBodyBytes caps form submissions well above any realistic
// payload.
const maxContactBodyBytes = 64 << 10

// ContactHandler handles public lead-capture submissions.
//
// Routes handled:
// - POST /api/contact      -> Submit
// - POST /api/hero-contact -> SubmitHero
type ContactHandler struct {
	contactService service.ContactService
	validator      *schema.Validator
	logger         *slog.Logger
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(contactService service.ContactService, validator *schema.Validator, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      validator,
		logger:         logger,
	}
}

type contactCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// Submit handles the full contact form.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "ContactHandler.Submit"

	body, err := io.ReadAll(io.LimitReader(r.Body, maxContactBodyBytes))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Failed to read request body"))
		return
	}

	msg, err := h.validator.ValidateContact(r.Context(), body)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	if msg != "" {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, msg))
		return
	}

	var payload struct {
		Name        string           `json:"name"`
		Phone       string           `json:"phone"`
		Email       string           `json:"email"`
		City        string           `json:"city"`
		LandSize    string           `json:"landSize"`
		North       domain.Dimension `json:"north"`
		South       domain.Dimension `json:"south"`
		East        domain.Dimension `json:"east"`
		West        domain.Dimension `json:"west"`
		LandFacing  string           `json:"landFacing"`
		ProjectType string           `json:"projectType"`
		Message     string           `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Request body must be valid JSON"))
		return
	}

	form, err := h.contactService.Create(r.Context(), domain.ContactFormParams{
		Name:        payload.Name,
		Phone:       payload.Phone,
		Email:       payload.Email,
		City:        payload.City,
		LandSize:    payload.LandSize,
		North:       payload.North,
		South:       payload.South,
		East:        payload.East,
		West:        payload.West,
		LandFacing:  payload.LandFacing,
		ProjectType: payload.ProjectType,
		Message:     payload.Message,
		Source:      domain.ContactSourceFull,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	metrics.ContactSubmissions.WithLabelValues(form.Source).Inc()
	writeJSON(w, http.StatusCreated, contactCreatedResponse{
		Message: "Thank you for reaching out. Our team will contact you shortly.",
		ID:      form.ID,
	})
}

// SubmitHero handles the simplified hero and popup forms. The optional
// "source" field distinguishes the popup variant.
func (h *ContactHandler) SubmitHero(w http.ResponseWriter, r *http.Request) {
	const op = "ContactHandler.SubmitHero"

	body, err := io.ReadAll(io.LimitReader(r.Body, maxContactBodyBytes))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Failed to read request body"))
		return
	}

	msg, err := h.validator.ValidateHero(r.Context(), body)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	if msg != "" {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, msg))
		return
	}

	var payload struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		ProjectType string `json:"projectType"`
		Message     string `json:"message"`
		Source      string `json:"source"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Request body must be valid JSON"))
		return
	}

	source := domain.ContactSourceHero
	if payload.Source == domain.ContactSourcePopup {
		source = domain.ContactSourcePopup
	}

	form, err := h.contactService.CreateFromHero(r.Context(), domain.HeroContactParams{
		Name:        payload.Name,
		Phone:       payload.Phone,
		Email:       payload.Email,
		ProjectType: payload.ProjectType,
		Message:     payload.Message,
		Source:      source,
	})
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	metrics.ContactSubmissions.WithLabelValues(form.Source).Inc()
	writeJSON(w, http.StatusCreated, contactCreatedResponse{
		Message: "Thank you for reaching out. Our team will contact you shortly.",
		ID:      form.ID,
	})
}
