package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/dto"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/service"
)

// ReviewHandler exposes the faculty review surface: status changes and
// feedback on submissions.
type ReviewHandler struct {
	projects *service.ProjectService
}

// NewReviewHandler constructs the handler.
func NewReviewHandler(projects *service.ProjectService) *ReviewHandler {
	return &ReviewHandler{projects: projects}
}

// Patch handles PATCH /projects/:id/review.
func (h *ReviewHandler) Patch(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	id, err := parseProjectID(c)
	if err != nil {
		return err
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.projects.Patch(c.UserContext(), principal.User, id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"project": dto.NewProjectResponse(*project)},
	})
}
