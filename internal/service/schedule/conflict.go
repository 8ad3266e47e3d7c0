package schedule

import (
	"time"

	"github.com/clinicore/staffops-backend-go/internal/domain/schedule"
)

// ConflictPair is one unordered pair of overlapping same-employee assignments.
type ConflictPair struct {
	First  schedule.ShiftAssignment
	Second schedule.ShiftAssignment
}

// FindConflicts reports every unordered pair of assignments that belong to the
// same employee on the same date and occupy overlapping [start, end) intervals.
// Advisory only: callers surface conflicts, nothing blocks creating them.
// Quadratic over a single day's assignments, which is bounded by the clinic's
// daily headcount.
func FindConflicts(assignments []schedule.ShiftAssignment) []ConflictPair {
	var conflicts []ConflictPair

	for i := 0; i < len(assignments); i++ {
		for j := i + 1; j < len(assignments); j++ {
			a, b := assignments[i], assignments[j]
			if a.EmployeeID != b.EmployeeID {
				continue
			}
			if !sameDate(a.Date, b.Date) {
				continue
			}
			if a.Overlaps(b) {
				conflicts = append(conflicts, ConflictPair{First: a, Second: b})
			}
		}
	}

	return conflicts
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
