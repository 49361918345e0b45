package handlers

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vcas-web/vcas-backend/internal/models"
	"github.com/vcas-web/vcas-backend/internal/repository"
	"github.com/vcas-web/vcas-backend/tests/fixtures"
	"github.com/vcas-web/vcas-backend/tests/mocks"
)

// ResumeHandlerTestSuite is the test suite for ResumeHandler
type ResumeHandlerTestSuite struct {
	suite.Suite
	echo       *echo.Echo
	handler    *ResumeHandler
	mockRepo   *mocks.MockApplicationRepository
	mockMailer *mocks.MockMailer
}

// SetupTest runs before each test
func (s *ResumeHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.mockRepo = new(mocks.MockApplicationRepository)
	s.mockMailer = new(mocks.MockMailer)
	s.handler = NewResumeHandler(s.mockRepo, s.mockMailer, nil)
}

// TearDownTest runs after each test
func (s *ResumeHandlerTestSuite) TearDownTest() {
	s.mockRepo.AssertExpectations(s.T())
	s.mockMailer.AssertExpectations(s.T())
}

// TestResumeHandlerTestSuite runs the test suite
func TestResumeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResumeHandlerTestSuite))
}

// multipartFile describes a file part for buildMultipart
type multipartFile struct {
	FieldName   string
	Filename    string
	ContentType string
	Content     []byte
}

// buildMultipart assembles a multipart form request body
func buildMultipart(s *suite.Suite, fields url.Values, file *multipartFile) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, values := range fields {
		for _, value := range values {
			require.NoError(s.T(), writer.WriteField(name, value))
		}
	}

	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.FieldName, file.Filename))
		header.Set("Content-Type", file.ContentType)
		part, err := writer.CreatePart(header)
		require.NoError(s.T(), err)
		_, err = part.Write(file.Content)
		require.NoError(s.T(), err)
	}

	require.NoError(s.T(), writer.Close())
	return body, writer.FormDataContentType()
}

func (s *ResumeHandlerTestSuite) createMultipartContext(fields url.Values, file *multipartFile) (echo.Context, *httptest.ResponseRecorder) {
	body, contentType := buildMultipart(&s.Suite, fields, file)
	req := httptest.NewRequest(http.MethodPost, "/api/resume", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

func (s *ResumeHandlerTestSuite) validFields() url.Values {
	return url.Values{
		"name":     {"John Doe"},
		"email":    {"john@example.com"},
		"position": {"Backend Engineer"},
	}
}

func (s *ResumeHandlerTestSuite) createTestApplication(id string) *models.ApplicationSubmission {
	return fixtures.NewApplicationBuilder().WithID(id).WithoutResume().Build()
}

// ==================== Create Tests ====================

func (s *ResumeHandlerTestSuite) TestCreate_ValidWithoutResume() {
	c, rec := s.createMultipartContext(s.validFields(), nil)

	s.mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ApplicationSubmission")).
		Run(func(args mock.Arguments) {
			application := args.Get(1).(*models.ApplicationSubmission)
			application.ID = "22222222-2222-2222-2222-222222222222"
			application.CreatedAt = time.Now()
			assert.False(s.T(), application.HasResume())
		}).
		Return(nil)
	s.mockMailer.On("SendApplicationNotification", mock.Anything, mock.Anything).Return(sentResult())
	s.mockMailer.On("SendApplicationConfirmation", mock.Anything, mock.Anything).Return(sentResult())

	err := s.handler.Create(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusCreated, rec.Code)

	resp, err := parseAPIResponse(rec)
	require.NoError(s.T(), err)
	assert.True(s.T(), resp.Success)
	assert.Equal(s.T(), "Application submitted successfully!", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(s.T(), "22222222-2222-2222-2222-222222222222", data["id"])
	assert.Equal(s.T(), "Backend Engineer", data["position"])
	assert.NotContains(s.T(), data, "resumeFile")
}

func (s *ResumeHandlerTestSuite) TestCreate_ValidWithResume() {
	content := []byte("%PDF-1.4 resume bytes")
	c, rec := s.createMultipartContext(s.validFields(), &multipartFile{
		FieldName:   "resumeFile",
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Content:     content,
	})

	s.mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ApplicationSubmission")).
		Run(func(args mock.Arguments) {
			application := args.Get(1).(*models.ApplicationSubmission)
			assert.Equal(s.T(), base64.StdEncoding.EncodeToString(content), application.ResumeFile)
		}).
		Return(nil)
	s.mockMailer.On("SendApplicationNotification", mock.Anything, mock.Anything).Return(sentResult())
	s.mockMailer.On("SendApplicationConfirmation", mock.Anything, mock.Anything).Return(sentResult())

	err := s.handler.Create(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusCreated, rec.Code)
}

func (s *ResumeHandlerTestSuite) TestCreate_SkillsRepeatedValues() {
	fields := s.validFields()
	fields["skills"] = []string{"Go", "SQL", "Docker"}
	c, rec := s.createMultipartContext(fields, nil)

	s.mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ApplicationSubmission")).
		Run(func(args mock.Arguments) {
			application := args.Get(1).(*models.ApplicationSubmission)
			assert.Equal(s.T(), models.StringList{"Go", "SQL", "Docker"}, application.Skills)
		}).
		Return(nil)
	s.mockMailer.On("SendApplicationNotification", mock.Anything, mock.Anything).Return(sentResult())
	s.mockMailer.On("SendApplicationConfirmation", mock.Anything, mock.Anything).Return(sentResult())

	err := s.handler.Create(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusCreated, rec.Code)
}

func (s *ResumeHandlerTestSuite) TestCreate_SkillsCommaSeparated() {
	fields := s.validFields()
	fields["skills"] = []string{"Go, SQL, Docker"}
	c, rec := s.createMultipartContext(fields, nil)

	s.mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ApplicationSubmission")).
		Run(func(args mock.Arguments) {
			application := args.Get(1).(*models.ApplicationSubmission)
			assert.Equal(s.T(), models.StringList{"Go", "SQL", "Docker"}, application.Skills)
		}).
		Return(nil)
	s.mockMailer.On("SendApplicationNotification", mock.Anything, mock.Anything).Return(sentResult())
	s.mockMailer.On("SendApplicationConfirmation", mock.Anything, mock.Anything).Return(sentResult())

	err := s.handler.Create(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusCreated, rec.Code)
}

func (s *ResumeHandlerTestSuite) TestCreate_MissingFields_NoRepositoryCall() {
	c, rec := s.createMultipartContext(url.Values{"name": {"John Doe"}}, nil)

	err := s.handler.Create(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	s.mockRepo.AssertNotCalled(s.T(), "Create")
	s.mockMailer.AssertNotCalled(s.T(), "SendApplicationNotification")
}

func (s *ResumeHandlerTestSuite) TestCreate_DisallowedFileType() {
	c, rec := s.createMultipartContext(s.validFields(), &multipartFile{
		FieldName:   "resumeFile",
		Filename:    "malware.exe",
		ContentType: "application/octet-stream",
		Content:     []byte("MZ"),
	})

	err := s.handler.Create(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)

	resp, err := parseErrorResponse(rec)
	require.NoError(s.T(), err)
	assert.False(s.T(), resp.Success)
	assert.Contains(s.T(), resp.Message, "PDF, DOC, and DOCX")
	s.mockRepo.AssertNotCalled(s.T(), "Create")
}

func (s *ResumeHandlerTestSuite) TestCreate_MismatchedContentType() {
	// Allowed extension but a disallowed declared content type
	c, rec := s.createMultipartContext(s.validFields(), &multipartFile{
		FieldName:   "resumeFile",
		Filename:    "resume.pdf",
		ContentType: "image/png",
		Content:     []byte("not a pdf"),
	})

	err := s.handler.Create(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	s.mockRepo.AssertNotCalled(s.T(), "Create")
}

func (s *ResumeHandlerTestSuite) TestCreate_DatabaseUnavailable() {
	c, rec := s.createMultipartContext(s.validFields(), nil)

	s.mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("create application: %w", repository.ErrUnavailable))

	err := s.handler.Create(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusServiceUnavailable, rec.Code)
	s.mockMailer.AssertNotCalled(s.T(), "SendApplicationNotification")
}

func (s *ResumeHandlerTestSuite) TestCreate_EmailFailureStill201() {
	c, rec := s.createMultipartContext(s.validFields(), nil)

	s.mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.mockMailer.On("SendApplicationNotification", mock.Anything, mock.Anything).Return(failedResult())
	s.mockMailer.On("SendApplicationConfirmation", mock.Anything, mock.Anything).Return(failedResult())

	err := s.handler.Create(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusCreated, rec.Code)
}

// ==================== List Tests ====================

func (s *ResumeHandlerTestSuite) TestList_Success() {
	applications := fixtures.CreateApplications(1)
	req := httptest.NewRequest(http.MethodGet, "/api/resume", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockRepo.On("List", mock.Anything).Return(applications, nil)

	err := s.handler.List(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, rec.Code)

	resp, err := parseListResponse(rec)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, resp.Count)
}

// ==================== Get Tests ====================

func (s *ResumeHandlerTestSuite) TestGet_NotFound() {
	req := httptest.NewRequest(http.MethodGet, "/api/resume/missing", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	err := s.handler.Get(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusNotFound, rec.Code)
}

func (s *ResumeHandlerTestSuite) TestGet_PersistenceFailureDetailInDevelopment() {
	s.T().Setenv("APP_ENV", "development")
	req := httptest.NewRequest(http.MethodGet, "/api/resume/some-id", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("some-id")

	s.mockRepo.On("GetByID", mock.Anything, "some-id").
		Return(nil, errors.New("disk I/O error"))

	err := s.handler.Get(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusInternalServerError, rec.Code)

	resp, err := parseErrorResponse(rec)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "failed to fetch resume submission", resp.Message)
	assert.Equal(s.T(), "INTERNAL_ERROR", resp.Code)
	assert.Contains(s.T(), resp.Error, "disk I/O error")
}

// ==================== Download Tests ====================

func (s *ResumeHandlerTestSuite) TestDownload_RoundTripsBytes() {
	content := []byte("%PDF-1.4 original upload")
	application := s.createTestApplication("22222222-2222-2222-2222-222222222222")
	application.ResumeFile = base64.StdEncoding.EncodeToString(content)

	req := httptest.NewRequest(http.MethodGet, "/api/resume/"+application.ID+"/download", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(application.ID)

	s.mockRepo.On("GetByID", mock.Anything, application.ID).Return(application, nil)

	err := s.handler.Download(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), content, rec.Body.Bytes())
	assert.Equal(s.T(), "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(s.T(), `attachment; filename="John_Doe_resume.pdf"`,
		rec.Header().Get(echo.HeaderContentDisposition))
}

func (s *ResumeHandlerTestSuite) TestDownload_NoResumeFile() {
	application := s.createTestApplication("22222222-2222-2222-2222-222222222222")

	req := httptest.NewRequest(http.MethodGet, "/api/resume/"+application.ID+"/download", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(application.ID)

	s.mockRepo.On("GetByID", mock.Anything, application.ID).Return(application, nil)

	err := s.handler.Download(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusNotFound, rec.Code)

	resp, err := parseErrorResponse(rec)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "no resume file found", resp.Message)
}

func (s *ResumeHandlerTestSuite) TestDownload_NotFound() {
	req := httptest.NewRequest(http.MethodGet, "/api/resume/missing/download", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	err := s.handler.Download(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusNotFound, rec.Code)
}

// ==================== Delete Tests ====================

func (s *ResumeHandlerTestSuite) TestDelete_Success() {
	req := httptest.NewRequest(http.MethodDelete, "/api/resume/some-id", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("some-id")

	s.mockRepo.On("Delete", mock.Anything, "some-id").Return(nil)

	err := s.handler.Delete(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
}

func (s *ResumeHandlerTestSuite) TestDelete_NotFound() {
	req := httptest.NewRequest(http.MethodDelete, "/api/resume/missing", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.mockRepo.On("Delete", mock.Anything, "missing").Return(repository.ErrNotFound)

	err := s.handler.Delete(c)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), http.StatusNotFound, rec.Code)
}
