package booking

import "errors"

var (
	// ErrServiceNotFound is returned for an unknown service slug.
	ErrServiceNotFound = errors.New("service not found")

	// ErrBookingNotFound covers both a missing reference and a contact
	// mismatch, so the endpoint does not reveal which part was wrong.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotCancellable is returned when a record is already cancelled or
	// completed.
	ErrNotCancellable = errors.New("booking can no longer be cancelled")
)
