package services

import (
	"employee-attendance/models"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of both repository interfaces
type MockRepository struct {
	mock.Mock
}

var (
	_ EmployeeRepository   = (*MockRepository)(nil)
	_ AttendanceRepository = (*MockRepository)(nil)
)

func (m *MockRepository) AddEmployee(name, department, phone string) (int64, error) {
	args := m.Called(name, department, phone)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListEmployees() ([]models.Employee, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}

func (m *MockRepository) GetEmployee(id int64) (*models.Employee, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockRepository) DeleteEmployee(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRepository) MarkAttendance(employeeID int64, date, status string) (int64, error) {
	args := m.Called(employeeID, date, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) AttendanceReport(filter models.ReportFilter) ([]models.ReportRow, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReportRow), args.Error(1)
}
