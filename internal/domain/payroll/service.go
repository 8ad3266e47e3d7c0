package payroll

import (
	"context"
)

// PayrollService defines business logic for payroll operations.
type PayrollService interface {
	// Generate computes payroll entries for every eligible employee over a pay
	// period. Generation is idempotent: periods that already have an entry are
	// skipped, and one employee's failure never aborts the run.
	Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)

	// ListEntries retrieves payroll entries with filters
	ListEntries(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// GetEntry retrieves a single payroll entry by ID
	GetEntry(ctx context.Context, id string) (PayrollEntryResponse, error)

	// ProcessEntry advances a pending entry to processed.
	ProcessEntry(ctx context.Context, id string) (PayrollEntryResponse, error)

	// MarkEntryPaid advances a processed entry to paid.
	MarkEntryPaid(ctx context.Context, id string) (PayrollEntryResponse, error)
}
