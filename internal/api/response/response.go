package response

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	apperrors "github.com/vcas-web/vcas-backend/internal/errors"
)

// APIResponse represents a standard API response.
// Every JSON body carries the success flag; clients never receive a bare
// stack trace or an HTML error page.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse represents a list response with an item count
type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// ErrorResponse represents an error API response. Error carries diagnostic
// detail and is only populated outside production.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
}

// includeDetail reports whether diagnostic detail may be exposed to clients
func includeDetail() bool {
	return os.Getenv("APP_ENV") != "production"
}

// Success returns a successful response with data
func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage returns a successful response with a message
func SuccessWithMessage(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created returns a 201 Created response
func Created(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns a list response with its item count
func List(c echo.Context, count int, data interface{}) error {
	return c.JSON(http.StatusOK, ListResponse{
		Success: true,
		Count:   count,
		Data:    data,
	})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Message: message,
		Code:    apperrors.CodeValidationFailed,
	})
}

// NotFound returns a 404 Not Found response
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Message: message,
		Code:    apperrors.CodeNotFound,
	})
}

// Unavailable returns a 503 Service Unavailable response
func Unavailable(c echo.Context, message string) error {
	return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Success: false,
		Message: message,
		Code:    apperrors.CodeServiceUnavailable,
	})
}

// TooManyRequests returns a 429 Too Many Requests response
func TooManyRequests(c echo.Context, message string) error {
	return c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Success: false,
		Message: message,
		Code:    apperrors.CodeRateLimited,
	})
}

// InternalError returns a 500 Internal Server Error response
func InternalError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Message: message,
		Code:    apperrors.CodeInternalError,
	})
}

// FromError maps an application error to the appropriate status code and
// envelope. Diagnostic detail from err is included outside production.
func FromError(c echo.Context, message string, err error) error {
	code := apperrors.GetErrorCode(err)
	resp := ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
	}
	if err != nil && includeDetail() {
		resp.Error = err.Error()
	}
	return c.JSON(statusForCode(code), resp)
}

// statusForCode maps error codes to HTTP status codes
func statusForCode(code string) int {
	switch code {
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeValidationFailed:
		return http.StatusBadRequest
	case apperrors.CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
