package setup

import (
	"employee-attendance/app"
	"employee-attendance/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health(application))

	api := fiberApp.Group("/api")

	api.Get("/employees", handlers.GetEmployees(application))
	api.Get("/employees/options", handlers.GetEmployeeOptions(application))
	api.Post("/employees", handlers.CreateEmployee(application))
	api.Delete("/employees/:id", handlers.DeleteEmployee(application))

	api.Post("/attendance", handlers.MarkAttendance(application))
	api.Get("/reports/attendance", handlers.GetAttendanceReport(application))
}
