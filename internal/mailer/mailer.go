// Package mailer sends transactional notification emails through the
// Brevo HTTP API. Sends are best-effort: every outcome is reported as a
// Result so callers can log failures and keep going.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/vcas-web/vcas-backend/internal/models"
)

// DefaultBaseURL is the Brevo API endpoint
const DefaultBaseURL = "https://api.brevo.com"

const sendPath = "/v3/smtp/email"

// Configuration errors returned in Results when credentials are absent
var (
	ErrMissingAPIKey     = errors.New("missing Brevo API key configuration")
	ErrMissingStaffEmail = errors.New("missing staff notification email configuration")
)

// Result reports the outcome of a single send attempt. Exactly one
// attempt is made per call; there is no retry queue.
type Result struct {
	Sent      bool
	MessageID string
	Err       error
}

// Mailer dispatches staff notifications and submitter confirmations
type Mailer interface {
	SendContactNotification(ctx context.Context, contact *models.ContactSubmission) Result
	SendContactConfirmation(ctx context.Context, contact *models.ContactSubmission) Result
	SendApplicationNotification(ctx context.Context, application *models.ApplicationSubmission) Result
	SendApplicationConfirmation(ctx context.Context, application *models.ApplicationSubmission) Result
}

// Config holds the mailer configuration, injected once at startup
type Config struct {
	APIKey     string
	StaffEmail string
	SenderName string
	BaseURL    string
	Timeout    time.Duration
}

// BrevoMailer implements Mailer against the Brevo transactional API
type BrevoMailer struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// NewBrevoMailer creates a BrevoMailer. Missing credentials do not fail
// construction; sends short-circuit to failure Results instead, so a
// misconfigured deployment still accepts submissions.
func NewBrevoMailer(cfg Config, logger *slog.Logger) *BrevoMailer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SenderName == "" {
		cfg.SenderName = "VCAS HR Team"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BrevoMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// address is a Brevo sender/recipient
type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// attachment carries a base64-encoded payload
type attachment struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// sendRequest is the Brevo smtp/email request body
type sendRequest struct {
	Sender      address      `json:"sender"`
	To          []address    `json:"to"`
	ReplyTo     *address     `json:"replyTo,omitempty"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
	Attachment  []attachment `json:"attachment,omitempty"`
}

// sendResponse is the Brevo success body
type sendResponse struct {
	MessageID string `json:"messageId"`
}

// errorResponse is the Brevo failure body
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendContactNotification emails the staff address about a new contact
// submission, with the reply target set to the submitter.
func (m *BrevoMailer) SendContactNotification(ctx context.Context, contact *models.ContactSubmission) Result {
	if m.cfg.APIKey == "" || m.cfg.StaffEmail == "" {
		return m.skip("contact notification", firstMissing(m.cfg.APIKey, m.cfg.StaffEmail))
	}

	html, err := renderContactNotification(contact)
	if err != nil {
		return Result{Err: fmt.Errorf("render contact notification: %w", err)}
	}

	return m.send(ctx, sendRequest{
		Sender:      address{Email: m.cfg.StaffEmail, Name: m.cfg.SenderName},
		To:          []address{{Email: m.cfg.StaffEmail, Name: "HR Department"}},
		ReplyTo:     &address{Email: contact.Email, Name: contact.Name},
		Subject:     "New Contact Form Submission: " + contact.Subject,
		HTMLContent: html,
	})
}

// SendContactConfirmation emails the submitter an acknowledgement
func (m *BrevoMailer) SendContactConfirmation(ctx context.Context, contact *models.ContactSubmission) Result {
	if m.cfg.APIKey == "" {
		return m.skip("contact confirmation", ErrMissingAPIKey)
	}

	html, err := renderContactConfirmation(contact)
	if err != nil {
		return Result{Err: fmt.Errorf("render contact confirmation: %w", err)}
	}

	return m.send(ctx, sendRequest{
		Sender:      address{Email: m.cfg.StaffEmail, Name: m.cfg.SenderName},
		To:          []address{{Email: contact.Email, Name: contact.Name}},
		Subject:     "Thank you for contacting VCAS",
		HTMLContent: html,
	})
}

// SendApplicationNotification emails the staff address about a new job
// application, attaching the resume when one was uploaded.
func (m *BrevoMailer) SendApplicationNotification(ctx context.Context, application *models.ApplicationSubmission) Result {
	if m.cfg.APIKey == "" || m.cfg.StaffEmail == "" {
		return m.skip("application notification", firstMissing(m.cfg.APIKey, m.cfg.StaffEmail))
	}

	html, err := renderApplicationNotification(application)
	if err != nil {
		return Result{Err: fmt.Errorf("render application notification: %w", err)}
	}

	req := sendRequest{
		Sender:      address{Email: m.cfg.StaffEmail, Name: m.cfg.SenderName},
		To:          []address{{Email: m.cfg.StaffEmail, Name: "HR Department"}},
		ReplyTo:     &address{Email: application.Email, Name: application.Name},
		Subject:     "New Job Application: " + application.Position,
		HTMLContent: html,
	}
	if application.HasResume() {
		req.Attachment = []attachment{{
			Name:    ResumeAttachmentName(application.Name),
			Content: application.ResumeFile,
		}}
	}

	return m.send(ctx, req)
}

// SendApplicationConfirmation emails the applicant an acknowledgement
func (m *BrevoMailer) SendApplicationConfirmation(ctx context.Context, application *models.ApplicationSubmission) Result {
	if m.cfg.APIKey == "" {
		return m.skip("application confirmation", ErrMissingAPIKey)
	}

	html, err := renderApplicationConfirmation(application)
	if err != nil {
		return Result{Err: fmt.Errorf("render application confirmation: %w", err)}
	}

	return m.send(ctx, sendRequest{
		Sender:      address{Email: m.cfg.StaffEmail, Name: m.cfg.SenderName},
		To:          []address{{Email: application.Email, Name: application.Name}},
		Subject:     "Thank you for applying to VCAS - " + application.Position,
		HTMLContent: html,
	})
}

// send performs one POST to the Brevo API and never returns an error to
// the caller; failures come back inside the Result.
func (m *BrevoMailer) send(ctx context.Context, payload sendRequest) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Err: fmt.Errorf("marshal send request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return Result{Err: fmt.Errorf("build send request: %w", err)}
	}
	req.Header.Set("api-key", m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return Result{Err: fmt.Errorf("brevo request failed: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{Err: fmt.Errorf("read brevo response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return Result{Err: fmt.Errorf("brevo rejected send (%d): %s", resp.StatusCode, apiErr.Message)}
		}
		return Result{Err: fmt.Errorf("brevo rejected send with status %d", resp.StatusCode)}
	}

	var ok sendResponse
	_ = json.Unmarshal(respBody, &ok)
	return Result{Sent: true, MessageID: ok.MessageID}
}

// skip returns a failure Result for a send suppressed by missing
// configuration, without any network I/O.
func (m *BrevoMailer) skip(kind string, err error) Result {
	m.logger.Warn("email send skipped, configuration missing",
		slog.String("kind", kind),
		slog.String("reason", err.Error()),
	)
	return Result{Err: err}
}

func firstMissing(apiKey, staffEmail string) error {
	if apiKey == "" {
		return ErrMissingAPIKey
	}
	if staffEmail == "" {
		return ErrMissingStaffEmail
	}
	return nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ResumeAttachmentName derives the attachment filename from the
// applicant's name: whitespace runs become underscores, plus the fixed
// "_resume.pdf" suffix.
func ResumeAttachmentName(applicantName string) string {
	return whitespaceRun.ReplaceAllString(applicantName, "_") + "_resume.pdf"
}
