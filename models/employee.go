package models

type Employee struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required,max=100,personname"`
	Department string `json:"department" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"required,max=30"`
}

// EmployeeOption is one entry of the employee picker, labelled "<id> - <name>".
type EmployeeOption struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
