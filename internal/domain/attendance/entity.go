package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusAbsent),
}

// Attendance is one employee's record for one working day. It is created on
// clock-in, completed once on clock-out (the hour buckets are populated then)
// and never mutated afterward. At most one record exists per (employee, date).
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	ClockIn     *time.Time
	ClockOut    *time.Time
	Status      Status
	LateMinutes int

	// Populated on clock-out.
	TotalHours    *decimal.Decimal
	RegularHours  *decimal.Decimal
	OvertimeHours *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// Completed reports whether the record has been clocked out and therefore
// carries payable hours.
func (a Attendance) Completed() bool {
	return a.ClockOut != nil && a.TotalHours != nil
}
