package errs

import "errors"

// Usecase-level sentinel errors shared by handlers
var (
	// Lookup errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrOrderNotFound       = errors.New("service order not found")
	ErrProductNotFound     = errors.New("product not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrPersistenceFailed = errors.New("persistence operation failed")
)
