// Package server exposes the translation engine as an HTTP service.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fauziaiqbal/Translingo/internal/translate"
)

// New builds the Fiber app with all routes registered.
func New(translator translate.Translator) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "translingo",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	h := NewHandler(translator)
	app.Post("/api/translate", h.Translate)
	app.Get("/api/languages", h.Languages)

	return app
}
