package models

import "strings"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

// rtlOverride is the U+202E mark that right-to-left widgets may prepend.
const rtlOverride = "\u202e"

var statusAliases = map[string]Status{
	"present": StatusPresent,
	"absent":  StatusAbsent,
	"leave":   StatusLeave,
	"حاضر":    StatusPresent,
	"غائب":    StatusAbsent,
	"إجازة":   StatusLeave,
}

// Statuses lists the accepted values in display order.
func Statuses() []Status {
	return []Status{StatusAbsent, StatusPresent, StatusLeave}
}

// ParseStatus maps user input onto the closed status set. English labels
// are matched case-insensitively and the Arabic labels of the original
// forms are accepted as aliases.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), rtlOverride))
	status, ok := statusAliases[strings.ToLower(s)]
	return status, ok
}

// Valid reports whether s is one of the canonical values.
func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLeave
}

type AttendanceRecord struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required,dateformat"`
	Status     string `json:"status" validate:"required,attendancestatus"`
}

// ReportRow is one line of the attendance report.
type ReportRow struct {
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

// ReportFilter bounds the report to the closed interval [Start, End].
// A filter with either bound missing selects every record.
type ReportFilter struct {
	Start string `query:"start" json:"start" validate:"omitempty,dateformat"`
	End   string `query:"end" json:"end" validate:"omitempty,dateformat"`
}

func (f ReportFilter) Bounded() bool {
	return f.Start != "" && f.End != ""
}
