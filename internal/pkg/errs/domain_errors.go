package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrMovieNotFound    = errors.New("movie not found")
	ErrShowtimeNotFound = errors.New("showtime not found")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrSeatsUnavailable = errors.New("seats unavailable")
	ErrEmptySeatList    = errors.New("seat list cannot be empty")
	ErrEmptyUserID      = errors.New("user id cannot be empty")

	// Payment errors
	ErrAmountMismatch    = errors.New("payment amount mismatch")
	ErrBookingNotPending = errors.New("booking is not pending")
	ErrBookingPaid       = errors.New("booking already paid")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
