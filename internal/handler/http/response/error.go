package response

import (
	"errors"
	"net/http"

	"github.com/clinicore/staffops-backend-go/internal/domain/attendance"
	"github.com/clinicore/staffops-backend-go/internal/domain/employee"
	"github.com/clinicore/staffops-backend-go/internal/domain/payroll"
	"github.com/clinicore/staffops-backend-go/internal/domain/schedule"
	"github.com/clinicore/staffops-backend-go/internal/domain/worksite"
	"github.com/clinicore/staffops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Employee already clocked in for this date")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Employee has not clocked in for this date")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Employee already clocked out for this date")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, schedule.ErrNoEligibleEmployees):
		UnprocessableEntity(w, "No eligible employees available for scheduling")
	case errors.Is(err, schedule.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrEntryAlreadyExists):
		Conflict(w, "Payroll entry already exists for this period")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Payroll entry status cannot advance that way")

	// Directory domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, worksite.ErrWorkSiteNotFound):
		NotFound(w, "Work site not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
