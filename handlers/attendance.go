package handlers

import (
	"employee-attendance/app"
	"employee-attendance/models"
	"employee-attendance/services"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// MarkAttendance records one attendance status
func MarkAttendance(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.MarkAttendanceRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		record, err := a.AttendanceService.Mark(req.EmployeeID, req.Date, req.Status)
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			return notFound(c, "Employee not found")
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidDate):
			return badRequest(c, err.Error())
		case err != nil:
			return serverErrorWithDetails(c, storageFailureMessage, err)
		}

		return created(c, fiber.Map{"attendance": record})
	}
}

// GetAttendanceReport returns attendance joined with employee names,
// newest first. format=csv streams the same rows as a CSV attachment.
func GetAttendanceReport(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter models.ReportFilter
		if err := c.QueryParser(&filter); err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		if err := a.Validator.Validate(&filter); err != nil {
			return validationError(c, err)
		}

		rows, err := a.AttendanceService.Report(filter.Start, filter.End)
		switch {
		case errors.Is(err, services.ErrInvalidRange), errors.Is(err, services.ErrInvalidDate):
			return badRequest(c, err.Error())
		case err != nil:
			return serverErrorWithDetails(c, storageFailureMessage, err)
		}

		switch c.Query("format", "json") {
		case "json":
			return success(c, fiber.Map{"filter": filter, "rows": rows})
		case "csv":
			return writeReportCSV(c, rows)
		default:
			return badRequest(c, "format must be json or csv")
		}
	}
}

func writeReportCSV(c *fiber.Ctx, rows []models.ReportRow) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="attendance-report.csv"`)

	w := csv.NewWriter(c.Response().BodyWriter())
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"name", "date", "status"})
	for _, row := range rows {
		records = append(records, []string{row.EmployeeName, row.Date, row.Status})
	}

	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write report csv: %w", err)
	}
	return nil
}
