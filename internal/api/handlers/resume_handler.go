package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vcas-web/vcas-backend/internal/api/response"
	apperrors "github.com/vcas-web/vcas-backend/internal/errors"
	"github.com/vcas-web/vcas-backend/internal/logger"
	"github.com/vcas-web/vcas-backend/internal/mailer"
	"github.com/vcas-web/vcas-backend/internal/models"
	"github.com/vcas-web/vcas-backend/internal/repository"
	"github.com/vcas-web/vcas-backend/internal/validator"
)

// ResumeHandler handles job application HTTP requests
type ResumeHandler struct {
	repo   repository.ApplicationRepository
	mailer mailer.Mailer
	logger *slog.Logger
}

// NewResumeHandler creates a new ResumeHandler
func NewResumeHandler(repo repository.ApplicationRepository, m mailer.Mailer, logger *slog.Logger) *ResumeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResumeHandler{
		repo:   repo,
		mailer: m,
		logger: logger,
	}
}

// ApplicationCreatedData is the payload returned on successful submission
type ApplicationCreatedData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /api/resume (multipart form data).
// The optional resumeFile part is filtered by type and size, base64-encoded
// into the record, and held in memory only for this request.
func (h *ResumeHandler) Create(c echo.Context) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	position := c.FormValue("position")

	if err := validator.ValidateApplicationInput(name, email, position); err != nil {
		return response.BadRequest(c, err.Error())
	}

	resumeFile, err := h.readResumeFile(c)
	if err != nil {
		return response.FromError(c, err.Error(), err)
	}

	application := &models.ApplicationSubmission{
		Name:        strings.TrimSpace(name),
		Email:       validator.NormalizeEmail(email),
		Phone:       strings.TrimSpace(c.FormValue("phone")),
		Position:    strings.TrimSpace(position),
		Experience:  strings.TrimSpace(c.FormValue("experience")),
		Education:   strings.TrimSpace(c.FormValue("education")),
		Skills:      h.skillsFromForm(c),
		CoverLetter: strings.TrimSpace(c.FormValue("coverLetter")),
		ResumeFile:  resumeFile,
	}

	if err := h.repo.Create(c.Request().Context(), application); err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return response.Unavailable(c, "database connection error, please try again later")
		}
		return response.FromError(c, "failed to submit application", err)
	}

	h.dispatchEmails(c, application)

	return response.Created(c, ApplicationCreatedData{
		ID:        application.ID,
		Name:      application.Name,
		Email:     application.Email,
		Position:  application.Position,
		CreatedAt: application.CreatedAt,
	}, "Application submitted successfully!")
}

// readResumeFile extracts and validates the optional resumeFile upload,
// returning its base64 encoding. An absent file is not an error.
func (h *ResumeHandler) readResumeFile(c echo.Context) (string, error) {
	fileHeader, err := c.FormFile("resumeFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("invalid file upload: %w", err)
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if err := validator.ValidateResumeUpload(fileHeader.Filename, contentType, fileHeader.Size); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Size was checked above, but the header is client-declared; cap the read.
	data, err := io.ReadAll(io.LimitReader(file, validator.MaxResumeSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) > validator.MaxResumeSize {
		return "", apperrors.ErrFileTooLarge
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// skillsFromForm collects the skills field values; repeated values are a
// structured list, a single value goes through JSON/comma normalization.
func (h *ResumeHandler) skillsFromForm(c echo.Context) models.StringList {
	params, err := c.FormParams()
	if err != nil {
		return nil
	}
	return validator.NormalizeSkills(params["skills"])
}

// dispatchEmails sends the staff notification (with resume attached) and
// the applicant confirmation in sequence, logging failures only.
func (h *ResumeHandler) dispatchEmails(c echo.Context, application *models.ApplicationSubmission) {
	ctx := c.Request().Context()

	if res := h.mailer.SendApplicationNotification(ctx, application); !res.Sent {
		h.logger.Warn("application notification email failed",
			slog.String("application_id", application.ID),
			slog.Any("error", res.Err),
		)
	}
	if res := h.mailer.SendApplicationConfirmation(ctx, application); !res.Sent {
		h.logger.Warn("application confirmation email failed",
			slog.String("application_id", application.ID),
			slog.String("recipient", logger.RedactEmail(application.Email)),
			slog.Any("error", res.Err),
		)
	}
}

// List handles GET /api/resume, newest first
func (h *ResumeHandler) List(c echo.Context) error {
	applications, err := h.repo.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return response.Unavailable(c, "database connection error, please try again later")
		}
		return response.FromError(c, "failed to fetch resume submissions", err)
	}

	return response.List(c, len(applications), applications)
}

// Get handles GET /api/resume/:id
func (h *ResumeHandler) Get(c echo.Context) error {
	application, err := h.repo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "resume submission not found")
		}
		return response.FromError(c, "failed to fetch resume submission", err)
	}

	return response.Success(c, application)
}

// Download handles GET /api/resume/:id/download.
// Reconstructs the original upload bytes from the stored base64 encoding.
func (h *ResumeHandler) Download(c echo.Context) error {
	application, err := h.repo.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "resume submission not found")
		}
		return response.FromError(c, "failed to fetch resume submission", err)
	}

	if !application.HasResume() {
		return response.NotFound(c, "no resume file found")
	}

	data, err := base64.StdEncoding.DecodeString(application.ResumeFile)
	if err != nil {
		return response.FromError(c, "failed to decode resume file", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, mailer.ResumeAttachmentName(application.Name)))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// Delete handles DELETE /api/resume/:id
func (h *ResumeHandler) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "resume submission not found")
		}
		return response.FromError(c, "failed to delete resume submission", err)
	}

	return response.SuccessWithMessage(c, nil, "Resume submission deleted successfully")
}
