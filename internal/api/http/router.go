package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Employees *handlers.EmployeesHandler
	View      *handlers.ViewHandler
	Export    *handlers.ExportHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	employees := api.Group("/employees")
	employees.Get("", cfg.Employees.List)
	employees.Post("", cfg.Employees.Create)
	employees.Post("/reload", cfg.Employees.Reload)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Delete("/:id", cfg.Employees.Delete)

	api.Get("/departments", cfg.Employees.Departments)
	api.Get("/export/:format", cfg.Export.Export)

	view := api.Group("/view")
	view.Get("", cfg.View.Get)
	view.Put("/search", cfg.View.SetSearch)
	view.Put("/departments", cfg.View.SetDepartments)
	view.Put("/page", cfg.View.SetPage)
	view.Post("/next", cfg.View.Next)
	view.Post("/prev", cfg.View.Prev)
	view.Put("/page-size", cfg.View.SetPageSize)
}
