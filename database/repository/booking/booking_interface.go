package bookingRepo

import "github.com/velaug24it-bit/serviceswebiste/models"

// MutateFunc edits a booking and its status record in place.
type MutateFunc func(booking *models.Booking, status *models.BookingStatus) error

// BookingRepository stores bookings together with their status records.
// A booking and its status record are always created and removed as a pair.
type BookingRepository interface {
	// Create stores a new booking with its initial status record.
	// It fails with repository.ErrDuplicate when the booking ID is taken.
	// Tracking IDs may repeat; lookups by tracking ID return the earliest booking.
	Create(booking models.Booking, status models.BookingStatus) error
	// GetByID joins the booking with its status record.
	GetByID(id string) (*models.Tracking, error)
	// GetByTrackingID returns the first booking, in insertion order, with the tracking identifier.
	GetByTrackingID(trackingID string) (*models.Tracking, error)
	// GetAll returns every booking with its status record, in insertion order.
	GetAll() ([]models.BookingView, error)
	// GetByProviderID returns the bookings of one provider, in insertion order.
	GetByProviderID(providerID int) ([]models.Booking, error)
	// Mutate applies fn to one booking under the store lock.
	Mutate(id string, fn MutateFunc) (*models.Tracking, error)
	// MutateAll applies fn to every pair under a single lock and returns how many pairs fn changed.
	MutateAll(fn func(booking *models.Booking, status *models.BookingStatus) bool) int
	// Clear removes every booking and status record.
	Clear()
}
