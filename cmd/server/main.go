package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onboard-api/internal/adapters/http/middleware"
	"onboard-api/internal/adapters/http/routes"
	"onboard-api/internal/adapters/persistence/models"
	"onboard-api/internal/adapters/persistence/repositories"
	"onboard-api/internal/config"
	"onboard-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Session store: opaque cookie token into server-held state
	store := session.New(session.Config{
		Expiration:     time.Duration(cfg.Auth.SessionHours) * time.Hour,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyGenerator: func() string {
			return uuid.New().String()
		},
	})

	// Start reaper for expired session rows
	reaper := services.NewSessionReaper(repositories.NewSessionRepository(db))
	reaper.Start()
	defer reaper.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Onboard API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, store and cfg for dependency injection)
	routes.Setup(app, db, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
