package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vcas-web/vcas-backend/internal/models"
	"gorm.io/gorm"
)

// ContactRepository defines the interface for contact submission data access.
// There is deliberately no update operation: submissions are immutable once
// persisted and can only be deleted.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.ContactSubmission) error
	List(ctx context.Context) ([]models.ContactSubmission, error)
	GetByID(ctx context.Context, id string) (*models.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}

// contactRepository implements ContactRepository using GORM
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository instance
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact submission. The record is populated with its
// generated identifier and creation timestamp on success.
func (r *contactRepository) Create(ctx context.Context, contact *models.ContactSubmission) error {
	result := r.db.WithContext(ctx).Create(contact)
	if result.Error != nil {
		if isUnavailableError(result.Error) {
			return fmt.Errorf("create contact: %w", ErrUnavailable)
		}
		return fmt.Errorf("failed to create contact submission: %w", result.Error)
	}
	return nil
}

// List retrieves all contact submissions, newest first
func (r *contactRepository) List(ctx context.Context) ([]models.ContactSubmission, error) {
	var contacts []models.ContactSubmission
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts)
	if result.Error != nil {
		if isUnavailableError(result.Error) {
			return nil, fmt.Errorf("list contacts: %w", ErrUnavailable)
		}
		return nil, fmt.Errorf("failed to list contact submissions: %w", result.Error)
	}
	return contacts, nil
}

// GetByID retrieves a contact submission by its identifier
func (r *contactRepository) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	var contact models.ContactSubmission
	result := r.db.WithContext(ctx).First(&contact, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if isUnavailableError(result.Error) {
			return nil, fmt.Errorf("get contact: %w", ErrUnavailable)
		}
		return nil, fmt.Errorf("failed to get contact submission: %w", result.Error)
	}
	return &contact, nil
}

// Delete removes a contact submission permanently. There is no soft delete.
func (r *contactRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.ContactSubmission{}, "id = ?", id)
	if result.Error != nil {
		if isUnavailableError(result.Error) {
			return fmt.Errorf("delete contact: %w", ErrUnavailable)
		}
		return fmt.Errorf("failed to delete contact submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
