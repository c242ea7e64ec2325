package booking

import (
	"errors"
	"fmt"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

// Reschedule moves the booking to a new date and/or time and restarts its
// status record, whatever its previous progress. The booking's own status is kept.
func (s *DefaultBookingService) Reschedule(bookingID string, req models.RescheduleRequest) (*models.Booking, error) {
	now := models.NewTimestamp(s.now())
	t, err := s.Repo.Mutate(bookingID, func(b *models.Booking, st *models.BookingStatus) error {
		if req.Date != nil {
			b.Date = *req.Date
		}
		if req.Time != nil {
			b.Time = *req.Time
		}

		st.Status = models.ProgressConfirmed
		st.Progress = initialProgress
		st.ETA = rescheduledETA
		st.LastUpdated = now
		return nil
	})
	if err != nil {
		return nil, bookingNotFound(bookingID, err)
	}
	return &t.Booking, nil
}

// Cancel marks the booking cancelled and drops its progress to zero.
func (s *DefaultBookingService) Cancel(bookingID string) (*models.Booking, error) {
	now := models.NewTimestamp(s.now())
	t, err := s.Repo.Mutate(bookingID, func(b *models.Booking, st *models.BookingStatus) error {
		b.Status = models.BookingCancelled

		st.Status = models.ProgressCancelled
		st.Progress = 0
		st.LastUpdated = now
		return nil
	})
	if err != nil {
		return nil, bookingNotFound(bookingID, err)
	}
	return &t.Booking, nil
}

func bookingNotFound(id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	return err
}
