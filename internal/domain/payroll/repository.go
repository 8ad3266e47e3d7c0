package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll entries.
type PayrollRepository interface {
	// Create creates a new payroll entry
	Create(ctx context.Context, entry PayrollEntry) (PayrollEntry, error)

	// GetByID retrieves a payroll entry by ID
	GetByID(ctx context.Context, id string) (PayrollEntry, error)

	// GetByEmployeeAndPeriod retrieves the entry for one employee and one pay
	// period. Returns nil when none exists; guards idempotent generation.
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (*PayrollEntry, error)

	// List retrieves payroll entries with filters and pagination
	List(ctx context.Context, filter PayrollFilter) ([]PayrollEntry, int64, error)

	// UpdateStatus advances an entry's lifecycle status
	UpdateStatus(ctx context.Context, id string, status EntryStatus) error
}
