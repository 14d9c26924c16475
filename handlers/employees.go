package handlers

import (
	"employee-attendance/app"
	"employee-attendance/models"

	"github.com/gofiber/fiber/v2"
)

// GetEmployees lists all employees
func GetEmployees(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employees, err := a.EmployeeService.List()
		if err != nil {
			return serverErrorWithDetails(c, storageFailureMessage, err)
		}

		return success(c, fiber.Map{"employees": employees})
	}
}

// GetEmployeeOptions returns the "<id> - <name>" labels used by the attendance form
func GetEmployeeOptions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		options, err := a.EmployeeService.Options()
		if err != nil {
			return serverErrorWithDetails(c, storageFailureMessage, err)
		}

		return success(c, fiber.Map{"options": options, "statuses": models.Statuses()})
	}
}

// CreateEmployee adds a new employee
func CreateEmployee(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateEmployeeRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		emp, err := a.EmployeeService.Add(req.Name, req.Department, req.Phone)
		if err != nil {
			return serverErrorWithDetails(c, storageFailureMessage, err)
		}

		return created(c, fiber.Map{"employee": emp})
	}
}

// DeleteEmployee removes an employee. Their attendance history is kept.
func DeleteEmployee(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return badRequest(c, "employee ID must be a positive integer")
		}

		if err := a.EmployeeService.Delete(int64(id)); err != nil {
			return serverErrorWithDetails(c, storageFailureMessage, err)
		}

		return success(c, fiber.Map{"message": "Employee deleted successfully"})
	}
}
