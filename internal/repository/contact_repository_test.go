package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vcas-web/vcas-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ContactRepositoryTestSuite is the test suite for ContactRepository
type ContactRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo ContactRepository
}

// SetupSuite runs once before all tests
func (s *ContactRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.ContactSubmission{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewContactRepository(db)
}

// TearDownSuite runs once after all tests
func (s *ContactRepositoryTestSuite) TearDownSuite() {
	sqlDB, _ := s.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SetupTest runs before each test - clean up data
func (s *ContactRepositoryTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM contact_submissions")
}

// TestContactRepositoryTestSuite runs the test suite
func TestContactRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContactRepositoryTestSuite))
}

func (s *ContactRepositoryTestSuite) newContact(subject string, createdAt time.Time) *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		Subject:   subject,
		Message:   "Hello there",
		CreatedAt: createdAt,
	}
}

// ==================== Create Tests ====================

func (s *ContactRepositoryTestSuite) TestCreate_Success() {
	contact := &models.ContactSubmission{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Phone:   "+1 555 0100",
		Subject: "Inquiry",
		Message: "Hello",
	}

	err := s.repo.Create(context.Background(), contact)

	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), contact.ID)
	assert.Len(s.T(), contact.ID, 36)
	assert.NotZero(s.T(), contact.CreatedAt)
}

func (s *ContactRepositoryTestSuite) TestCreate_AssignsDistinctIDs() {
	first := s.newContact("First", time.Time{})
	second := s.newContact("Second", time.Time{})

	require.NoError(s.T(), s.repo.Create(context.Background(), first))
	require.NoError(s.T(), s.repo.Create(context.Background(), second))

	assert.NotEqual(s.T(), first.ID, second.ID)
}

func (s *ContactRepositoryTestSuite) TestCreate_RoundTrip() {
	contact := &models.ContactSubmission{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Phone:   "+1 555 0100",
		Subject: "Inquiry",
		Message: "Line one\nLine two",
	}
	require.NoError(s.T(), s.repo.Create(context.Background(), contact))

	got, err := s.repo.GetByID(context.Background(), contact.ID)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), contact.Name, got.Name)
	assert.Equal(s.T(), contact.Email, got.Email)
	assert.Equal(s.T(), contact.Phone, got.Phone)
	assert.Equal(s.T(), contact.Subject, got.Subject)
	assert.Equal(s.T(), contact.Message, got.Message)
}

// ==================== List Tests ====================

func (s *ContactRepositoryTestSuite) TestList_Empty() {
	contacts, err := s.repo.List(context.Background())

	assert.NoError(s.T(), err)
	assert.Empty(s.T(), contacts)
}

func (s *ContactRepositoryTestSuite) TestList_NewestFirst() {
	// Explicit distinct timestamps: ordering has no tiebreaker
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	oldest := s.newContact("Oldest", base.Add(-2*time.Hour))
	middle := s.newContact("Middle", base.Add(-time.Hour))
	newest := s.newContact("Newest", base)

	require.NoError(s.T(), s.repo.Create(context.Background(), oldest))
	require.NoError(s.T(), s.repo.Create(context.Background(), newest))
	require.NoError(s.T(), s.repo.Create(context.Background(), middle))

	contacts, err := s.repo.List(context.Background())

	require.NoError(s.T(), err)
	require.Len(s.T(), contacts, 3)
	assert.Equal(s.T(), "Newest", contacts[0].Subject)
	assert.Equal(s.T(), "Middle", contacts[1].Subject)
	assert.Equal(s.T(), "Oldest", contacts[2].Subject)
}

// ==================== GetByID Tests ====================

func (s *ContactRepositoryTestSuite) TestGetByID_NotFound() {
	got, err := s.repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")

	assert.Nil(s.T(), got)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

// ==================== Delete Tests ====================

func (s *ContactRepositoryTestSuite) TestDelete_Success() {
	contact := s.newContact("To delete", time.Time{})
	require.NoError(s.T(), s.repo.Create(context.Background(), contact))

	err := s.repo.Delete(context.Background(), contact.ID)

	assert.NoError(s.T(), err)

	got, err := s.repo.GetByID(context.Background(), contact.ID)
	assert.Nil(s.T(), got)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ContactRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")

	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ContactRepositoryTestSuite) TestDelete_Twice_SecondNotFound() {
	contact := s.newContact("Delete twice", time.Time{})
	require.NoError(s.T(), s.repo.Create(context.Background(), contact))

	require.NoError(s.T(), s.repo.Delete(context.Background(), contact.ID))
	err := s.repo.Delete(context.Background(), contact.ID)

	assert.ErrorIs(s.T(), err, ErrNotFound)
}
