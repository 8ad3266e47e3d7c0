package schedule

import (
	"context"
)

// ScheduleService defines business logic for shift scheduling.
type ScheduleService interface {
	// CreateAssignment records a manually entered shift assignment.
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (ShiftAssignmentResponse, error)

	// ListAssignments retrieves assignments with filters
	ListAssignments(ctx context.Context, filter AssignmentFilter) (ListAssignmentResponse, error)

	// DayConflicts reports overlapping same-employee assignments on one date.
	DayConflicts(ctx context.Context, date string) ([]ConflictResponse, error)

	// AutoGenerate runs the workload balancer over a date range, creating
	// scheduled assignments best-effort and reporting aggregate results.
	AutoGenerate(ctx context.Context, req AutoScheduleRequest) (AutoScheduleResponse, error)
}
