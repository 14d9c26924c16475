package handlers

import (
	"employee-attendance/app"

	"github.com/gofiber/fiber/v2"
)

// Health reports liveness and whether the store answers queries
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := a.Repo.CountAttendance()
		if err != nil {
			a.Logger.Error("health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}

		return success(c, fiber.Map{"status": "ok", "attendance_records": n})
	}
}
