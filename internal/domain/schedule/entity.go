package schedule

import "time"

type AssignmentStatus string

const (
	AssignmentStatusScheduled AssignmentStatus = "scheduled"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusMissed    AssignmentStatus = "missed"
)

var AssignmentStatusValues = []string{
	string(AssignmentStatusScheduled),
	string(AssignmentStatusCompleted),
	string(AssignmentStatusMissed),
}

// ShiftAssignment is a planned work interval for one employee on one date at
// one work site. Assignments are created by the auto-scheduler or by manual
// entry and only ever change through status transitions.
type ShiftAssignment struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StartTime  time.Time // on Date
	EndTime    time.Time // on Date
	WorkSiteID string
	Status     AssignmentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	WorkSiteName *string
}

// Overlaps reports whether the two assignments occupy overlapping time,
// treating [StartTime, EndTime) as half-open so that back-to-back shifts do
// not collide.
func (a ShiftAssignment) Overlaps(b ShiftAssignment) bool {
	return a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime)
}
