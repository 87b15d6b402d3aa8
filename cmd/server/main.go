package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/autohaus/autohaus/internal/config"
	"github.com/autohaus/autohaus/internal/database"
	autographql "github.com/autohaus/autohaus/internal/graphql"
	"github.com/autohaus/autohaus/internal/handlers"
	"github.com/autohaus/autohaus/internal/middleware"
	"github.com/autohaus/autohaus/internal/services"
	"github.com/autohaus/autohaus/internal/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/autohaus/autohaus/docs/api" // Swagger docs
)

// @title Autohaus API
// @version 1.0.0
// @description Go Fiber service for car records with multi-database support
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/autohaus/autohaus

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	mailer := services.NewMailer(cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		BodyLimit:             20 * 1024 * 1024,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("autohaus")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// REST routes (public GET, authenticated mutations)
	getHandler := &handlers.AutoGetHandler{DB: db}
	writeHandler := &handlers.AutoWriteHandler{DB: db, Mailer: mailer}

	rest := app.Group("/rest")
	rest.Get("/file/:id", getHandler.GetFile)
	rest.Get("/:id", getHandler.GetAutoByID)
	rest.Get("/", getHandler.GetAutos)
	rest.Post("/", middleware.AuthAdminOrUser(), writeHandler.PostAuto)
	rest.Post("/:id", middleware.AuthAdminOrUser(), writeHandler.PostFile)
	rest.Put("/:id", middleware.AuthAdminOrUser(), writeHandler.PutAuto)
	rest.Delete("/:id", middleware.AuthAdmin(), writeHandler.DeleteAuto)

	// GraphQL endpoint
	graphqlHandler, err := autographql.Handler(db, mailer)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}
	app.Post("/graphql", graphqlHandler)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Initialize Authorizer eagerly; failure is tolerated so local
	// setups without an IdP can still serve reads.
	if err := services.InitAuthorizer(cfg, "http", "localhost:"+cfg.Port); err != nil {
		log.Printf("Authorizer initialization deferred: %v", err)
	}

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
