package services

import "employee-attendance/models"

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	AddEmployee(name, department, phone string) (int64, error)
	ListEmployees() ([]models.Employee, error)
	GetEmployee(id int64) (*models.Employee, error)
	DeleteEmployee(id int64) error
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	GetEmployee(id int64) (*models.Employee, error)
	MarkAttendance(employeeID int64, date, status string) (int64, error)
	AttendanceReport(filter models.ReportFilter) ([]models.ReportRow, error)
}
