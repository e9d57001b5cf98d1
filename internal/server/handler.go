package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fauziaiqbal/Translingo/internal/language"
	"github.com/fauziaiqbal/Translingo/internal/translate"
)

// Handler serves the translation API.
type Handler struct {
	translator translate.Translator
}

// NewHandler creates a handler over the given translator.
func NewHandler(translator translate.Translator) *Handler {
	return &Handler{translator: translator}
}

// Translate handles POST /api/translate.
// Blank text short-circuits to an empty result rather than an error.
func (h *Handler) Translate(c *fiber.Ctx) error {
	var req translate.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.JSON(translate.Result{
			SourceLanguage: "-",
			Translated:     "",
			Romanized:      "",
		})
	}

	result, err := h.translator.Translate(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// Languages handles GET /api/languages, listing the selector set.
func (h *Handler) Languages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": language.Supported,
	})
}
