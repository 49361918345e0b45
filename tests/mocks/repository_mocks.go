package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vcas-web/vcas-backend/internal/models"
)

// MockContactRepository implements repository.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

// Create persists a new contact submission
func (m *MockContactRepository) Create(ctx context.Context, contact *models.ContactSubmission) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

// List retrieves all contact submissions, newest first
func (m *MockContactRepository) List(ctx context.Context) ([]models.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactSubmission), args.Error(1)
}

// GetByID retrieves a contact submission by its identifier
func (m *MockContactRepository) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactSubmission), args.Error(1)
}

// Delete removes a contact submission by its identifier
func (m *MockContactRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockApplicationRepository implements repository.ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

// Create persists a new application submission
func (m *MockApplicationRepository) Create(ctx context.Context, application *models.ApplicationSubmission) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

// List retrieves all application submissions, newest first
func (m *MockApplicationRepository) List(ctx context.Context) ([]models.ApplicationSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationSubmission), args.Error(1)
}

// GetByID retrieves an application submission by its identifier
func (m *MockApplicationRepository) GetByID(ctx context.Context, id string) (*models.ApplicationSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApplicationSubmission), args.Error(1)
}

// Delete removes an application submission by its identifier
func (m *MockApplicationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
