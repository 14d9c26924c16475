package services

import (
	"employee-attendance/models"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEmployeeService_Add(t *testing.T) {
	t.Run("Trims fields and returns the new employee", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("AddEmployee", "Ali", "Eng", "555").Return(int64(7), nil)

		svc := NewEmployeeService(repo)
		emp, err := svc.Add("  Ali ", "Eng ", " 555")

		assert.NoError(t, err)
		assert.Equal(t, &models.Employee{ID: 7, Name: "Ali", Department: "Eng", Phone: "555"}, emp)
		repo.AssertExpectations(t)
	})

	t.Run("Blank name is rejected before storage", func(t *testing.T) {
		repo := new(MockRepository)

		svc := NewEmployeeService(repo)
		emp, err := svc.Add("   ", "Eng", "555")

		assert.ErrorIs(t, err, ErrNameRequired)
		assert.Nil(t, emp)
		repo.AssertNotCalled(t, "AddEmployee", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage failure is returned", func(t *testing.T) {
		repo := new(MockRepository)
		storageErr := errors.New("disk full")
		repo.On("AddEmployee", "Ali", "", "").Return(int64(0), storageErr)

		svc := NewEmployeeService(repo)
		_, err := svc.Add("Ali", "", "")

		assert.ErrorIs(t, err, storageErr)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteEmployee", int64(3)).Return(nil)

	svc := NewEmployeeService(repo)
	assert.NoError(t, svc.Delete(3))
	repo.AssertExpectations(t)
}

func TestEmployeeService_Options(t *testing.T) {
	t.Run("Labels employees with id and name", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListEmployees").Return([]models.Employee{
			{ID: 1, Name: "Ali"},
			{ID: 2, Name: "Sara"},
		}, nil)

		svc := NewEmployeeService(repo)
		options, err := svc.Options()

		assert.NoError(t, err)
		assert.Equal(t, []models.EmployeeOption{
			{ID: 1, Label: "1 - Ali"},
			{ID: 2, Label: "2 - Sara"},
		}, options)
	})

	t.Run("No employees yields empty options", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListEmployees").Return([]models.Employee{}, nil)

		svc := NewEmployeeService(repo)
		options, err := svc.Options()

		assert.NoError(t, err)
		assert.NotNil(t, options)
		assert.Empty(t, options)
	})
}
