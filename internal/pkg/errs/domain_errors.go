package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Deal errors
	ErrDealNotFound       = errors.New("deal not found")
	ErrDateOptionNotFound = errors.New("date option not found")

	// Booking errors
	ErrBookingNotFound       = errors.New("booking not found")
	ErrCapacityExceeded      = errors.New("not enough capacity for requested travellers")
	ErrBookingNotCancelable  = errors.New("booking cannot be canceled")
	ErrBookingNotConfirmable = errors.New("booking can no longer be confirmed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
