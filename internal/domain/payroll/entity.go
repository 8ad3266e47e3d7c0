package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "pending"
	EntryStatusProcessed EntryStatus = "processed"
	EntryStatusPaid      EntryStatus = "paid"
)

var EntryStatusValues = []string{
	string(EntryStatusPending),
	string(EntryStatusProcessed),
	string(EntryStatusPaid),
}

// PayrollEntry is the computed pay for one employee over one pay period.
// At most one entry exists per (employee, period); generation is idempotent.
// Status only ever advances pending -> processed -> paid.
type PayrollEntry struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time

	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	RegularPay    decimal.Decimal
	OvertimePay   decimal.Decimal
	GrossPay      decimal.Decimal

	WithholdingTax  decimal.Decimal
	SocialInsurance decimal.Decimal
	HealthInsurance decimal.Decimal
	HousingFund     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal

	Status    EntryStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// CanTransitionTo enforces the one-way pending -> processed -> paid lifecycle.
func (e PayrollEntry) CanTransitionTo(next EntryStatus) bool {
	switch e.Status {
	case EntryStatusPending:
		return next == EntryStatusProcessed
	case EntryStatusProcessed:
		return next == EntryStatusPaid
	default:
		return false
	}
}
