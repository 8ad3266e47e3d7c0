package employee

import "context"

// EmployeeService exposes the read-only employee directory.
type EmployeeService interface {
	// ListEmployees retrieves employees, optionally restricted to active ones.
	ListEmployees(ctx context.Context, activeOnly bool) (ListEmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
}
