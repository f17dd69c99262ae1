package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/dto"
	"github.com/spec-kit/portfolio-service/internal/auth"
	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/service"
)

// ProjectsHandler exposes the student-facing catalog operations plus the
// shared list and delete surface.
type ProjectsHandler struct {
	projects *service.ProjectService
}

// NewProjectsHandler constructs the handler.
func NewProjectsHandler(projects *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

// Create handles POST /projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.projects.Create(c.UserContext(), principal.User, req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"project": dto.NewProjectResponse(*project)},
	})
}

// List handles GET /projects. Students see their own submissions; admins see
// everything, optionally narrowed with ?owner=.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	filter := listFilterFor(principal, c.Query("owner"))
	projects, err := h.projects.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"projects": dto.NewProjectListResponse(projects)},
	})
}

// Stats handles GET /projects/stats.
func (h *ProjectsHandler) Stats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	stats, err := h.projects.StatsFor(c.UserContext(), listFilterFor(principal, c.Query("owner")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"stats": dto.StatsResponse{Total: stats.Total, Completed: stats.Completed}},
	})
}

// Update handles PUT /projects/:id.
func (h *ProjectsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	id, err := parseProjectID(c)
	if err != nil {
		return err
	}

	var req dto.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.projects.Update(c.UserContext(), principal.User, id, req.Input())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"project": dto.NewProjectResponse(*project)},
	})
}

// Delete handles DELETE /projects/:id.
func (h *ProjectsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	id, err := parseProjectID(c)
	if err != nil {
		return err
	}

	if err := h.projects.Remove(c.UserContext(), principal.User, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func listFilterFor(principal *auth.Principal, ownerQuery string) service.ListFilter {
	if principal.User.Role == domain.RoleAdmin {
		return service.ListFilter{OwnerEmail: ownerQuery}
	}
	return service.ListFilter{OwnerEmail: principal.User.Email}
}

func parseProjectID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid project id")
	}
	return id, nil
}
