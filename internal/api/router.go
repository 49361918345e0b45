package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vcas-web/vcas-backend/internal/api/handlers"
	"github.com/vcas-web/vcas-backend/internal/api/middleware"
	"github.com/vcas-web/vcas-backend/internal/api/response"
	apperrors "github.com/vcas-web/vcas-backend/internal/errors"
	"github.com/vcas-web/vcas-backend/internal/mailer"
	"github.com/vcas-web/vcas-backend/internal/repository"
	"gorm.io/gorm"
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	DB             *gorm.DB
	Mailer         mailer.Mailer
	Logger         *slog.Logger
	AllowedOrigins []string
	RateLimit      float64 // requests per second (0 = default)
	RateBurst      int
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Errors and unmatched routes must produce the JSON envelope, never
	// an HTML error page.
	e.HTTPErrorHandler = jsonErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.SecureHeaders())
	e.Use(middleware.CORS(cfg.AllowedOrigins))
	e.Use(middleware.RateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.Logger))
	if cfg.Logger != nil {
		e.Use(middleware.RequestLogger(cfg.Logger))
	}

	contactRepo := repository.NewContactRepository(cfg.DB)
	applicationRepo := repository.NewApplicationRepository(cfg.DB)

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	contactHandler := handlers.NewContactHandler(contactRepo, cfg.Mailer, cfg.Logger)
	resumeHandler := handlers.NewResumeHandler(applicationRepo, cfg.Mailer, cfg.Logger)

	e.GET("/api/health", healthHandler.Health)

	contact := e.Group("/api/contact")
	contact.POST("", contactHandler.Create)
	contact.GET("", contactHandler.List)
	contact.GET("/:id", contactHandler.Get)
	contact.DELETE("/:id", contactHandler.Delete)

	resume := e.Group("/api/resume")
	resume.POST("", resumeHandler.Create)
	resume.GET("", resumeHandler.List)
	resume.GET("/:id", resumeHandler.Get)
	resume.GET("/:id/download", resumeHandler.Download)
	resume.DELETE("/:id", resumeHandler.Delete)

	return e
}

// jsonErrorHandler converts every uncaught error into the standard JSON
// envelope: 404 for unmatched routes, 500 otherwise.
func jsonErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Something went wrong!"
	code := apperrors.CodeInternalError

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if status == http.StatusNotFound {
			message = "Route not found"
			code = apperrors.CodeNotFound
		} else if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	_ = c.JSON(status, response.ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
	})
}
