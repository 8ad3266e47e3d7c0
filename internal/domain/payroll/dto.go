package payroll

import (
	"github.com/clinicore/staffops-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	PeriodStart string   `json:"period_start"` // "2006-01-02"
	PeriodEnd   string   `json:"period_end"`   // "2006-01-02"
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must not be before period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	EmployeeID  *string
	PeriodStart *string // "2006-01-02"
	PeriodEnd   *string // "2006-01-02"
	Status      *string
	Page        int
	Limit       int
}

func (f PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.PeriodStart != nil {
		if _, ok := validator.IsValidDate(*f.PeriodStart); !ok {
			errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start must be in YYYY-MM-DD format"})
		}
	}
	if f.PeriodEnd != nil {
		if _, ok := validator.IsValidDate(*f.PeriodEnd); !ok {
			errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be in YYYY-MM-DD format"})
		}
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, EntryStatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of pending, processed, paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollEntryResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`

	RegularHours  string `json:"regular_hours"`
	OvertimeHours string `json:"overtime_hours"`
	RegularPay    string `json:"regular_pay"`
	OvertimePay   string `json:"overtime_pay"`
	GrossPay      string `json:"gross_pay"`

	WithholdingTax  string `json:"withholding_tax"`
	SocialInsurance string `json:"social_insurance"`
	HealthInsurance string `json:"health_insurance"`
	HousingFund     string `json:"housing_fund"`
	TotalDeductions string `json:"total_deductions"`
	NetPay          string `json:"net_pay"`

	Status string `json:"status"`
}

type ListPayrollResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	Entries    []PayrollEntryResponse `json:"entries"`
}

// SkippedEmployee records an employee the generator deliberately passed over.
type SkippedEmployee struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// FailedEmployee records an employee whose entry could not be persisted; the
// run continues with the remaining employees.
type FailedEmployee struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type GeneratePayrollResponse struct {
	CreatedCount int                    `json:"created_count"`
	SkippedCount int                    `json:"skipped_count"`
	FailedCount  int                    `json:"failed_count"`
	Created      []PayrollEntryResponse `json:"created"`
	Skipped      []SkippedEmployee      `json:"skipped,omitempty"`
	Failed       []FailedEmployee       `json:"failed,omitempty"`
}
