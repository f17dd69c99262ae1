package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-service/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Projects       *handlers.ProjectsHandler
	Review         *handlers.ReviewHandler
	Tips           *handlers.TipsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/tips/random", cfg.Tips.Random)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	authProtected.Post("/logout", cfg.Auth.Logout)
	authProtected.Get("/me", cfg.Auth.Me)

	projects := app.Group("/projects", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	projects.Get("", cfg.Projects.List)
	projects.Get("/stats", cfg.Projects.Stats)
	projects.Post("", auth.RequireStudent(), cfg.Projects.Create)
	projects.Put("/:id", auth.RequireStudent(), cfg.Projects.Update)
	projects.Delete("/:id", cfg.Projects.Delete)
	projects.Patch("/:id/review", auth.RequireAdmin(), cfg.Review.Patch)
}
