package routes

import (
	"onboard-api/internal/adapters/http/handlers"
	"onboard-api/internal/adapters/http/middleware"
	"onboard-api/internal/adapters/persistence/repositories"
	"onboard-api/internal/config"
	"onboard-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, store *session.Store, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)

	// Initialize services
	registrationService := services.NewRegistrationService(userRepo, cfg)
	sessionService := services.NewSessionService(userRepo, sessionRepo, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	registrationHandler := handlers.NewRegistrationHandler(registrationService, store)
	sessionHandler := handlers.NewSessionHandler(sessionService, store)

	// Health
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Users
	users := app.Group("/users")
	users.Post("/register/1", registrationHandler.StageOne)
	users.Post("/register/2", registrationHandler.StageTwo)
	users.Post("/register/3", registrationHandler.StageThree)

	// Login is reachable by GET for historical clients, POST for new ones
	loginLimiter := middleware.AuthRateLimiter()
	users.Get("/login", loginLimiter, sessionHandler.Login)
	users.Post("/login", loginLimiter, sessionHandler.Login)

	users.Post("/logout", sessionHandler.Logout)
}
