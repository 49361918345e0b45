package handlers

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vcas-web/vcas-backend/internal/api/response"
	"github.com/vcas-web/vcas-backend/internal/logger"
	"github.com/vcas-web/vcas-backend/internal/mailer"
	"github.com/vcas-web/vcas-backend/internal/models"
	"github.com/vcas-web/vcas-backend/internal/repository"
	"github.com/vcas-web/vcas-backend/internal/validator"
)

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	repo   repository.ContactRepository
	mailer mailer.Mailer
	logger *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(repo repository.ContactRepository, m mailer.Mailer, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		repo:   repo,
		mailer: m,
		logger: logger,
	}
}

// ContactRequest represents the contact form fields
type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ContactCreatedData is the payload returned on successful submission
type ContactCreatedData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /api/contact.
// Pipeline: validate, normalize, persist, then best-effort notification
// emails. Email failures are logged and never fail the request; persistence
// success alone decides the HTTP outcome.
func (h *ContactHandler) Create(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if err := validator.ValidateContactInput(req.Name, req.Email, req.Subject, req.Message); err != nil {
		return response.BadRequest(c, err.Error())
	}

	contact := &models.ContactSubmission{
		Name:    strings.TrimSpace(req.Name),
		Email:   validator.NormalizeEmail(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if err := h.repo.Create(c.Request().Context(), contact); err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return response.Unavailable(c, "database connection error, please try again later")
		}
		return response.FromError(c, "failed to submit contact form", err)
	}

	h.dispatchEmails(c, contact)

	return response.Created(c, ContactCreatedData{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		CreatedAt: contact.CreatedAt,
	}, "Contact form submitted successfully!")
}

// dispatchEmails sends the staff notification and submitter confirmation
// in sequence. Both outcomes are logged; neither affects the response.
func (h *ContactHandler) dispatchEmails(c echo.Context, contact *models.ContactSubmission) {
	ctx := c.Request().Context()

	if res := h.mailer.SendContactNotification(ctx, contact); !res.Sent {
		h.logger.Warn("contact notification email failed",
			slog.String("contact_id", contact.ID),
			slog.Any("error", res.Err),
		)
	}
	if res := h.mailer.SendContactConfirmation(ctx, contact); !res.Sent {
		h.logger.Warn("contact confirmation email failed",
			slog.String("contact_id", contact.ID),
			slog.String("recipient", logger.RedactEmail(contact.Email)),
			slog.Any("error", res.Err),
		)
	}
}

// List handles GET /api/contact, newest first
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.repo.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return response.Unavailable(c, "database connection error, please try again later")
		}
		return response.FromError(c, "failed to fetch contact submissions", err)
	}

	return response.List(c, len(contacts), contacts)
}

// Get handles GET /api/contact/:id
func (h *ContactHandler) Get(c echo.Context) error {
	contact, err := h.repo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "contact submission not found")
		}
		return response.FromError(c, "failed to fetch contact submission", err)
	}

	return response.Success(c, contact)
}

// Delete handles DELETE /api/contact/:id
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "contact submission not found")
		}
		return response.FromError(c, "failed to delete contact submission", err)
	}

	return response.SuccessWithMessage(c, nil, "Contact submission deleted successfully")
}
