// Package validator provides form input validation and normalization
// for the VCAS intake endpoints.
package validator

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	apperrors "github.com/vcas-web/vcas-backend/internal/errors"
)

// MaxResumeSize is the upload size limit for resume files (10 MiB)
const MaxResumeSize = 10 << 20

// emailRegex is a deliberately permissive syntactic check: something
// without whitespace or '@' on each side of a single '@', with a dot in
// the domain. Full RFC validation is out of scope for a contact form.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// resumeTypePattern matches the allowed document types in both file
// extensions and declared content types.
var resumeTypePattern = regexp.MustCompile(`pdf|doc|docx`)

// ValidationError reports which fields are missing or invalid.
// It maps to a 400 response.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Unwrap ties ValidationError into the application error taxonomy
func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// ValidateEmail reports whether the email has a plausible local@domain.tld shape
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// NormalizeEmail lowercases and trims an email address.
// Normalization is idempotent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateContactInput checks the required contact form fields.
// Returns a ValidationError listing every failing field, or nil.
func ValidateContactInput(name, email, subject, message string) error {
	var fields []string
	if strings.TrimSpace(name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(email) == "" {
		fields = append(fields, "email")
	} else if !ValidateEmail(email) {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(subject) == "" {
		fields = append(fields, "subject")
	}
	if strings.TrimSpace(message) == "" {
		fields = append(fields, "message")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateApplicationInput checks the required job application fields.
func ValidateApplicationInput(name, email, position string) error {
	var fields []string
	if strings.TrimSpace(name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(email) == "" {
		fields = append(fields, "email")
	} else if !ValidateEmail(email) {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(position) == "" {
		fields = append(fields, "position")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// NormalizeSkills resolves the skills field, which clients submit in one of
// three shapes, in this preference order:
//  1. repeated form values (already a list), passed through as-is
//  2. a single JSON-encoded array
//  3. a comma-separated string, split and trimmed with empty parts dropped
//
// Malformed JSON degrades to the comma-split fallback rather than failing
// the request; that fallback is part of the observable contract.
func NormalizeSkills(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	if len(values) > 1 {
		return values
	}

	raw := strings.TrimSpace(values[0])
	if raw == "" {
		return nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed
	}

	var skills []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ValidateResumeUpload enforces the resume file constraints: at most
// MaxResumeSize bytes, and both the file extension and the declared
// content type must match the pdf/doc/docx allow-list.
func ValidateResumeUpload(filename, contentType string, size int64) error {
	if size > MaxResumeSize {
		return apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !resumeTypePattern.MatchString(ext) {
		return apperrors.ErrUnsupportedFileType
	}
	if !resumeTypePattern.MatchString(strings.ToLower(contentType)) {
		return apperrors.ErrUnsupportedFileType
	}
	return nil
}
