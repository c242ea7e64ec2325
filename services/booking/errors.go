package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the identifier.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrProviderNotFound is returned when a booking names an unknown provider.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrIDSpaceExhausted is returned when no unused booking identifier could be generated.
	ErrIDSpaceExhausted = errors.New("could not allocate a unique booking identifier")
)
