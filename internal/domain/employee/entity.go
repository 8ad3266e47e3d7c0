package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	EmployeeCode      string
	FullName          string
	HourlyRate        decimal.Decimal
	EmploymentStatus  EmploymentStatus
	PrimaryWorkSiteID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// IsActive reports whether the employee is eligible for scheduling and payroll.
func (e Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}
