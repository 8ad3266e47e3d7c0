package schedule

import (
	"context"
	"time"
)

// ScheduleRepository defines data access methods for shift assignments.
type ScheduleRepository interface {
	// Create creates a new shift assignment
	Create(ctx context.Context, assignment ShiftAssignment) (ShiftAssignment, error)

	// GetByID retrieves a shift assignment by ID
	GetByID(ctx context.Context, id string) (ShiftAssignment, error)

	// ListByDate retrieves all assignments on one calendar date
	ListByDate(ctx context.Context, date time.Time) ([]ShiftAssignment, error)

	// List retrieves assignments with filters and pagination
	List(ctx context.Context, filter AssignmentFilter) ([]ShiftAssignment, int64, error)

	// UpdateStatus advances an assignment's lifecycle status
	UpdateStatus(ctx context.Context, id string, status AssignmentStatus) error

	// ScheduledHourTotals returns, per employee, the hours already assigned in
	// [start, end]. Seeds the balancer's accumulated-hours snapshot.
	ScheduledHourTotals(ctx context.Context, start, end time.Time) (map[string]float64, error)

	// ScheduledDayCounts returns, per employee, the number of distinct days
	// with an assignment in [start, end]. Input to reliability scores.
	ScheduledDayCounts(ctx context.Context, start, end time.Time) (map[string]int, error)

	// ListScheduledWithoutAttendance retrieves assignments still in the
	// scheduled state on dates before the given day whose employee never
	// clocked in. Consumed by the absence-marking job.
	ListScheduledWithoutAttendance(ctx context.Context, before time.Time) ([]ShiftAssignment, error)
}
