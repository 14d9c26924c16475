package services

import (
	"employee-attendance/models"
	"fmt"
	"strings"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// List retrieves all employees in id order
func (es *EmployeeService) List() ([]models.Employee, error) {
	return es.repo.ListEmployees()
}

// Add creates an employee and returns it with its assigned id
func (es *EmployeeService) Add(name, department, phone string) (*models.Employee, error) {
	emp := &models.Employee{
		Name:       strings.TrimSpace(name),
		Department: strings.TrimSpace(department),
		Phone:      strings.TrimSpace(phone),
	}
	if emp.Name == "" {
		return nil, ErrNameRequired
	}

	id, err := es.repo.AddEmployee(emp.Name, emp.Department, emp.Phone)
	if err != nil {
		return nil, err
	}
	emp.ID = id

	return emp, nil
}

// Delete removes an employee. Unknown ids are ignored and attendance
// history is never touched.
func (es *EmployeeService) Delete(id int64) error {
	return es.repo.DeleteEmployee(id)
}

// Options returns the employee picker entries
func (es *EmployeeService) Options() ([]models.EmployeeOption, error) {
	employees, err := es.repo.ListEmployees()
	if err != nil {
		return nil, err
	}

	options := make([]models.EmployeeOption, 0, len(employees))
	for _, emp := range employees {
		options = append(options, models.EmployeeOption{
			ID:    emp.ID,
			Label: fmt.Sprintf("%d - %s", emp.ID, emp.Name),
		})
	}
	return options, nil
}
