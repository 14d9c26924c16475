package app

import (
	"employee-attendance/database"
	"employee-attendance/services"
	"employee-attendance/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo              *database.Repository
	EmployeeService   *services.EmployeeService
	AttendanceService *services.AttendanceService
	Validator         *validator.Validator
	Logger            *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, logger *slog.Logger) *App {
	return &App{
		Repo:              repo,
		EmployeeService:   services.NewEmployeeService(repo),
		AttendanceService: services.NewAttendanceService(repo),
		Validator:         validator.New(),
		Logger:            logger,
	}
}
