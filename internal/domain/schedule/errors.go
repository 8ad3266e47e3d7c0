package schedule

import "errors"

// Schedule domain errors
var (
	ErrAssignmentNotFound  = errors.New("shift assignment not found")
	ErrNoEligibleEmployees = errors.New("no eligible employees for scheduling")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
)
