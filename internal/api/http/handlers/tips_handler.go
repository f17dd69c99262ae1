package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/quotes"
)

// TipsHandler serves the motivational tip for the dashboard header.
type TipsHandler struct {
	client *quotes.Client
}

// NewTipsHandler constructs the handler.
func NewTipsHandler(client *quotes.Client) *TipsHandler {
	return &TipsHandler{client: client}
}

// Random handles GET /tips/random. Always succeeds; failures inside the
// client degrade to the fallback string.
func (h *TipsHandler) Random(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": fiber.Map{"content": h.client.Random(c.UserContext())},
	})
}
