package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /api/health. The probe always answers 200; the
// database field reports connectivity separately.
func (h *HealthHandler) Health(c echo.Context) error {
	database := "healthy"
	if sqlDB, err := h.db.DB(); err != nil {
		database = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		database = "unhealthy"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "VCAS server is running",
		Database:  database,
		Timestamp: time.Now().UTC(),
	})
}
