package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vcas-web/vcas-backend/internal/models"
	"gorm.io/gorm"
)

// ApplicationRepository defines the interface for job application data access.
// Same create/read/delete contract as contacts; the resume payload travels
// inside the record, base64-encoded.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.ApplicationSubmission) error
	List(ctx context.Context) ([]models.ApplicationSubmission, error)
	GetByID(ctx context.Context, id string) (*models.ApplicationSubmission, error)
	Delete(ctx context.Context, id string) error
}

// applicationRepository implements ApplicationRepository using GORM
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository instance
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts a new application submission. The insert is a single
// document write: either the full record lands with its identifier, or
// nothing does.
func (r *applicationRepository) Create(ctx context.Context, application *models.ApplicationSubmission) error {
	result := r.db.WithContext(ctx).Create(application)
	if result.Error != nil {
		if isUnavailableError(result.Error) {
			return fmt.Errorf("create application: %w", ErrUnavailable)
		}
		return fmt.Errorf("failed to create application submission: %w", result.Error)
	}
	return nil
}

// List retrieves all application submissions, newest first
func (r *applicationRepository) List(ctx context.Context) ([]models.ApplicationSubmission, error) {
	var applications []models.ApplicationSubmission
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&applications)
	if result.Error != nil {
		if isUnavailableError(result.Error) {
			return nil, fmt.Errorf("list applications: %w", ErrUnavailable)
		}
		return nil, fmt.Errorf("failed to list application submissions: %w", result.Error)
	}
	return applications, nil
}

// GetByID retrieves an application submission by its identifier
func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.ApplicationSubmission, error) {
	var application models.ApplicationSubmission
	result := r.db.WithContext(ctx).First(&application, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if isUnavailableError(result.Error) {
			return nil, fmt.Errorf("get application: %w", ErrUnavailable)
		}
		return nil, fmt.Errorf("failed to get application submission: %w", result.Error)
	}
	return &application, nil
}

// Delete removes an application submission permanently
func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.ApplicationSubmission{}, "id = ?", id)
	if result.Error != nil {
		if isUnavailableError(result.Error) {
			return fmt.Errorf("delete application: %w", ErrUnavailable)
		}
		return fmt.Errorf("failed to delete application submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
