package services

import "errors"

// Common service-level errors
var (
	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameRequired     = errors.New("employee name is required")

	// Attendance errors
	ErrInvalidStatus = errors.New("invalid attendance status")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidRange  = errors.New("start date is after end date")
)
