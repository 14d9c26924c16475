package services

import (
	"employee-attendance/models"
	"time"
)

const dateLayout = "2006-01-02"

// AttendanceService handles business logic for attendance records
type AttendanceService struct {
	repo AttendanceRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(repo AttendanceRepository) *AttendanceService {
	return &AttendanceService{repo: repo}
}

// Mark records a status for an employee on a date. The status is mapped
// onto the closed set before it is stored.
func (as *AttendanceService) Mark(employeeID int64, date, status string) (*models.AttendanceRecord, error) {
	parsed, ok := models.ParseStatus(status)
	if !ok || !parsed.Valid() {
		return nil, ErrInvalidStatus
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	emp, err := as.repo.GetEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrEmployeeNotFound
	}

	id, err := as.repo.MarkAttendance(employeeID, date, string(parsed))
	if err != nil {
		return nil, err
	}

	return &models.AttendanceRecord{
		ID:         id,
		EmployeeID: employeeID,
		Date:       date,
		Status:     string(parsed),
	}, nil
}

// Report returns the attendance report over [start, end]. Unless both
// bounds are given the report covers every record.
func (as *AttendanceService) Report(start, end string) ([]models.ReportRow, error) {
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, ErrInvalidDate
		}
	}
	// ISO dates compare correctly as strings
	if start != "" && end != "" && start > end {
		return nil, ErrInvalidRange
	}

	return as.repo.AttendanceReport(models.ReportFilter{Start: start, End: end})
}
