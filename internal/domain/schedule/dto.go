package schedule

import (
	"github.com/clinicore/staffops-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`       // "2006-01-02"
	StartTime  string `json:"start_time"` // "15:04:05"
	EndTime    string `json:"end_time"`   // "15:04:05"
	WorkSiteID string `json:"work_site_id"`
}

func (r CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.WorkSiteID) {
		errs = append(errs, validator.ValidationError{Field: "work_site_id", Message: "work_site_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	start, okStart := validator.IsValidClockTime(r.StartTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:mm:ss format"})
	}
	end, okEnd := validator.IsValidClockTime(r.EndTime)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:mm:ss format"})
	}
	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be after start_time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentFilter struct {
	EmployeeID *string
	StartDate  *string // "2006-01-02"
	EndDate    *string // "2006-01-02"
	Status     *string
	Page       int
	Limit      int
}

func (f AssignmentFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, AssignmentStatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of scheduled, completed, missed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AutoScheduleRequest drives one auto-scheduling run over an inclusive date
// range.
type AutoScheduleRequest struct {
	StartDate        string `json:"start_date"` // "2006-01-02"
	EndDate          string `json:"end_date"`   // "2006-01-02"
	WorkDaysPerWeek  int    `json:"work_days_per_week"`
	ShiftLengthHours int    `json:"shift_length_hours"`
	IncludeWeekends  bool   `json:"include_weekends"`
	BalanceWorkload  bool   `json:"balance_workload"`
}

func (r AutoScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}
	if r.WorkDaysPerWeek < 1 || r.WorkDaysPerWeek > 7 {
		errs = append(errs, validator.ValidationError{Field: "work_days_per_week", Message: "work_days_per_week must be between 1 and 7"})
	}
	if r.ShiftLengthHours < 1 || r.ShiftLengthHours > 12 {
		errs = append(errs, validator.ValidationError{Field: "shift_length_hours", Message: "shift_length_hours must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftAssignmentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	WorkSiteID   string `json:"work_site_id"`
	WorkSiteName string `json:"work_site_name,omitempty"`
	Status       string `json:"status"`
}

type ListAssignmentResponse struct {
	TotalCount  int64                     `json:"total_count"`
	Page        int                       `json:"page"`
	Limit       int                       `json:"limit"`
	Assignments []ShiftAssignmentResponse `json:"assignments"`
}

// ConflictResponse reports one overlapping pair of same-employee assignments.
// Advisory only: overlaps are flagged, never blocked.
type ConflictResponse struct {
	EmployeeID   string                  `json:"employee_id"`
	EmployeeName string                  `json:"employee_name,omitempty"`
	Date         string                  `json:"date"`
	First        ShiftAssignmentResponse `json:"first"`
	Second       ShiftAssignmentResponse `json:"second"`
}

// SkippedSlot records a slot the auto-scheduler deliberately did not fill.
type SkippedSlot struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employee_id,omitempty"`
	Reason     string `json:"reason"`
}

// FailedSlot records a slot whose persistence failed; the run continues.
type FailedSlot struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type AutoScheduleResponse struct {
	CreatedCount int                       `json:"created_count"`
	SkippedCount int                       `json:"skipped_count"`
	FailedCount  int                       `json:"failed_count"`
	Created      []ShiftAssignmentResponse `json:"created"`
	Skipped      []SkippedSlot             `json:"skipped,omitempty"`
	Failed       []FailedSlot              `json:"failed,omitempty"`
}
