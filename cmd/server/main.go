// Package main provides the entry point for the textlift server
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/textlift/textlift/internal/api"
	"github.com/textlift/textlift/internal/config"
	"github.com/textlift/textlift/pkg/loader"
	"github.com/textlift/textlift/pkg/logging"
	"github.com/textlift/textlift/pkg/ocr"
	"github.com/textlift/textlift/pkg/orchestrate"
)

func main() {
	cfg := config.Load()

	if err := logging.SetupLogger(cfg.Logging); err != nil {
		panic(err)
	}
	log := logging.GetLogger("server")

	// Wire the extraction pipeline
	pageLoader := loader.New(cfg.Processing.RenderDPI, cfg.Processing.MaxPDFPages)
	invoker := ocr.NewInvoker(cfg.Processing.MaxOCRConcurrent)
	engine := orchestrate.New(pageLoader, invoker)

	app := fiber.New(fiber.Config{
		AppName:   "textlift",
		BodyLimit: cfg.Server.BodyLimit,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "UTC",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	h := api.NewHandlers(engine, cfg.Server.MaxUploadBytes, cfg.Processing.ExtractTimeout)
	setupRoutes(app, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Starting textlift server")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// setupRoutes configures all API routes
func setupRoutes(app *fiber.App, h *api.Handlers) {
	app.Get("/", h.Index)
	app.Get("/health", h.Health)

	v1 := app.Group("/api/v1")
	v1.Get("/languages", h.Languages)
	v1.Post("/extract", h.ExtractText)
}
