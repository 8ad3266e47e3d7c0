package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific date. Used to prevent double clock-in. Returns nil when no
	// record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListCompletedInRange retrieves the clocked-out records for one employee
	// whose date falls within [start, end]. Input to payroll generation.
	ListCompletedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// AttendedDayCounts returns, per employee, the number of days in
	// [start, end] with a present or late record. Input to reliability scores.
	AttendedDayCounts(ctx context.Context, start, end time.Time) (map[string]int, error)
}
