package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/service"
)

// DashboardHandler serves the admin dashboard API. All routes sit
// behind RequireAdmin.
//
// Routes handled:
// - GET   /api/admin/dashboard/contact-forms              -> ListContactForms
// - PATCH /api/admin/dashboard/contact-forms/{id}/process -> MarkProcessed
// - GET   /api/admin/dashboard/contact-forms/export       -> ExportCSV
type DashboardHandler struct {
	contactService service.ContactService
	logger         *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(contactService service.ContactService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// ListContactForms returns all stored submissions.
func (h *DashboardHandler) ListContactForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.contactService.List(r.Context())
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	if forms == nil {
		forms = []domain.ContactForm{}
	}
	writeJSON(w, http.StatusOK, forms)
}

// MarkProcessed flags a submission as handled.
func (h *DashboardHandler) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	const op = "DashboardHandler.MarkProcessed"

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Contact form id must be a number"))
		return
	}

	form, err := h.contactService.MarkProcessed(r.Context(), id)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// ExportCSV streams all submissions as a CSV download.
func (h *DashboardHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("contact-forms-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.contactService.ExportCSV(r.Context(), w); err != nil {
		// Headers are already sent; log instead of writing a JSON body.
		h.logger.Error("csv export failed", "error", err)
	}
}
