package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	units "github.com/docker/go-units"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"farhan/portfolio-generator/internal/config"
	"farhan/portfolio-generator/internal/handlers"
	"farhan/portfolio-generator/internal/models"
	"farhan/portfolio-generator/internal/pipeline"
	"farhan/portfolio-generator/internal/services"
	"farhan/portfolio-generator/internal/session"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio generator HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	log.Println("✅ Config loaded successfully")

	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	model, err := services.NewGeminiChat(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.Temperature,
		cfg.Gemini.MaxOutputTokens,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	prompts := services.NewPromptBuilder()
	pipe := pipeline.New(
		services.NewTextExtractor(),
		services.NewSpecificationService(model, prompts),
		services.NewSiteService(model, prompts),
		services.NewZipPackager(),
	)
	sessions := session.NewStore()
	log.Println("✅ Pipeline initialized")

	previewSettings := models.PreviewSettings{
		HeightPx:  cfg.Preview.HeightPx,
		Scrolling: cfg.Preview.Scrolling,
	}

	specHandler := handlers.NewSpecificationHandler(pipe, sessions, cfg.Uploads.MaxFileSize)
	siteHandler := handlers.NewSiteHandler(pipe, sessions, services.NewPreviewSanitizer(), previewSettings)
	sessionHandler := handlers.NewSessionHandler(sessions)
	log.Println("✅ Handlers initialized")

	app := fiber.New(fiber.Config{
		AppName:      "AI Portfolio Generator API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Uploads.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/session", sessionHandler.HandleGet)
	api.Post("/specification", specHandler.HandleGenerate)
	api.Put("/specification", specHandler.HandleUpdate)
	api.Post("/site", siteHandler.HandleSynthesize)
	api.Get("/preview", siteHandler.HandlePreview)
	api.Get("/download", siteHandler.HandleDownload)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Portfolio Generator API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/session",
				"POST /api/v1/specification",
				"PUT /api/v1/specification",
				"POST /api/v1/site",
				"GET /api/v1/preview",
				"GET /api/v1/download",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s (max upload %s)\n", addr, units.HumanSize(float64(cfg.Uploads.MaxFileSize)))

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
