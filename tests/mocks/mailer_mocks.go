package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vcas-web/vcas-backend/internal/mailer"
	"github.com/vcas-web/vcas-backend/internal/models"
)

// MockMailer implements mailer.Mailer
type MockMailer struct {
	mock.Mock
}

// SendContactNotification dispatches the staff notification for a contact submission
func (m *MockMailer) SendContactNotification(ctx context.Context, contact *models.ContactSubmission) mailer.Result {
	args := m.Called(ctx, contact)
	return args.Get(0).(mailer.Result)
}

// SendContactConfirmation dispatches the submitter confirmation for a contact submission
func (m *MockMailer) SendContactConfirmation(ctx context.Context, contact *models.ContactSubmission) mailer.Result {
	args := m.Called(ctx, contact)
	return args.Get(0).(mailer.Result)
}

// SendApplicationNotification dispatches the staff notification for an application submission
func (m *MockMailer) SendApplicationNotification(ctx context.Context, application *models.ApplicationSubmission) mailer.Result {
	args := m.Called(ctx, application)
	return args.Get(0).(mailer.Result)
}

// SendApplicationConfirmation dispatches the submitter confirmation for an application submission
func (m *MockMailer) SendApplicationConfirmation(ctx context.Context, application *models.ApplicationSubmission) mailer.Result {
	args := m.Called(ctx, application)
	return args.Get(0).(mailer.Result)
}
