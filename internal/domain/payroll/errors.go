package payroll

import "errors"

// Payroll domain errors
var (
	ErrEntryNotFound      = errors.New("payroll entry not found")
	ErrEntryAlreadyExists = errors.New("payroll entry already exists for this period")
	ErrInvalidTransition  = errors.New("payroll status can only advance pending, processed, paid")
)
