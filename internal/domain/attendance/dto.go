package attendance

import (
	"github.com/clinicore/staffops-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"`          // "2006-01-02"
	ClockInTime string `json:"clock_in_time"` // "15:04:05"
}

func (r ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidClockTime(r.ClockInTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "clock_in_time", Message: "clock_in_time must be in HH:mm:ss format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`           // "2006-01-02"
	ClockOutTime string `json:"clock_out_time"` // "15:04:05"
}

func (r ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidClockTime(r.ClockOutTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "clock_out_time", Message: "clock_out_time must be in HH:mm:ss format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string // "2006-01-02"
	EndDate    *string // "2006-01-02"
	Status     *string
	Page       int
	Limit      int
}

func (f AttendanceFilter) Validate() error {
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
	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of present, late, absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	Date          string  `json:"date"`
	ClockInTime   *string `json:"clock_in_time"`
	ClockOutTime  *string `json:"clock_out_time"`
	Status        string  `json:"status"`
	LateMinutes   int     `json:"late_minutes"`
	TotalHours    *string `json:"total_hours,omitempty"`
	RegularHours  *string `json:"regular_hours,omitempty"`
	OvertimeHours *string `json:"overtime_hours,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}
