package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("employee has already clocked in for this date")
	ErrNotClockedIn       = errors.New("employee has not clocked in for this date")
	ErrAlreadyClockedOut  = errors.New("employee has already clocked out for this date")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
