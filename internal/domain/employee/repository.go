package employee

import "context"

// EmployeeRepository is the read-only view of the employee directory the
// engine consumes. Employee records are owned elsewhere.
type EmployeeRepository interface {
	// List retrieves employees, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]Employee, error)

	// GetByID retrieves a single employee.
	GetByID(ctx context.Context, id string) (Employee, error)
}
