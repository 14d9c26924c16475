package database

import (
	"database/sql"
	"employee-attendance/models"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ==================== EMPLOYEES ====================

// AddEmployee inserts a new employee and returns its assigned id.
// Names are not unique.
func (r *Repository) AddEmployee(name, department, phone string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO employees (name, department, phone)
		VALUES (?, ?, ?)
	`, name, department, phone)
	if err != nil {
		return 0, storageErr("add employee", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("add employee", err)
	}
	return id, nil
}

// ListEmployees returns every employee in id order.
func (r *Repository) ListEmployees() ([]models.Employee, error) {
	rows, err := r.db.Query(`
		SELECT id, name, department, phone
		FROM employees
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, storageErr("list employees", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	employees := make([]models.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, storageErr("list employees", err)
		}
		employees = append(employees, *emp)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list employees", err)
	}
	return employees, nil
}

// GetEmployee returns nil, nil when no employee has the given id.
func (r *Repository) GetEmployee(id int64) (*models.Employee, error) {
	row := r.db.QueryRow(`
		SELECT id, name, department, phone
		FROM employees WHERE id = ?
	`, id)

	emp, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get employee", err)
	}
	return emp, nil
}

// DeleteEmployee removes the employee row only. Attendance rows that
// reference it are kept; deleting an unknown id is a no-op.
func (r *Repository) DeleteEmployee(id int64) error {
	if _, err := r.db.Exec("DELETE FROM employees WHERE id = ?", id); err != nil {
		return storageErr("delete employee", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s scanner) (*models.Employee, error) {
	var emp models.Employee
	var department, phone sql.NullString
	if err := s.Scan(&emp.ID, &emp.Name, &department, &phone); err != nil {
		return nil, err
	}
	emp.Department = department.String
	emp.Phone = phone.String
	return &emp, nil
}

// ==================== ATTENDANCE ====================

// MarkAttendance appends an attendance record. The employee is not
// checked and earlier records for the same date are left in place.
func (r *Repository) MarkAttendance(employeeID int64, date, status string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO attendance (employee_id, date, status)
		VALUES (?, ?, ?)
	`, employeeID, date, status)
	if err != nil {
		return 0, storageErr("mark attendance", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("mark attendance", err)
	}
	return id, nil
}

// AttendanceReport joins attendance with employees, so records of deleted
// employees drop out. The date filter applies only when both bounds are
// set; otherwise every row is returned. Rows are newest date first and
// records sharing a date come most recently marked first.
func (r *Repository) AttendanceReport(filter models.ReportFilter) ([]models.ReportRow, error) {
	query := `
		SELECT e.name, a.date, a.status
		FROM employees e
		JOIN attendance a ON e.id = a.employee_id`

	var args []any
	if filter.Bounded() {
		query += "\n\t\tWHERE a.date BETWEEN ? AND ?"
		args = append(args, filter.Start, filter.End)
	}
	query += "\n\t\tORDER BY a.date DESC, a.id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, storageErr("attendance report", err)
	}
	defer rows.Close()

	report := make([]models.ReportRow, 0)
	for rows.Next() {
		var row models.ReportRow
		var date, status sql.NullString
		if err := rows.Scan(&row.EmployeeName, &date, &status); err != nil {
			return nil, storageErr("attendance report", err)
		}
		row.Date = date.String
		row.Status = status.String
		report = append(report, row)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("attendance report", err)
	}
	return report, nil
}

// CountAttendance counts raw attendance rows, including those whose
// employee no longer exists.
func (r *Repository) CountAttendance() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM attendance").Scan(&n); err != nil {
		return 0, storageErr("count attendance", err)
	}
	return n, nil
}
