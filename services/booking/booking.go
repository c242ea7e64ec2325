package booking

import (
	"errors"
	"fmt"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"go.uber.org/zap"
)

const maxIDAttempts = 10

// CreateBooking books a provider and starts its status record at 10% confirmed.
func (s *DefaultBookingService) CreateBooking(req models.BookingRequest) (*models.CreatedBooking, error) {
	prov, err := s.ProviderRepo.GetByID(req.ProviderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProviderNotFound, req.ProviderID)
		}
		return nil, err
	}

	newID := s.NewBookingID
	if newID == nil {
		newID = NewBookingID
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		now := s.now()
		b := models.Booking{
			ID:           newID(),
			TrackingID:   newTrackingID(now, s.Rand),
			ProviderID:   prov.ID,
			ProviderName: prov.Name,
			ServiceType:  req.ServiceType,
			Date:         req.Date,
			Time:         req.Time,
			Description:  req.Description,
			Phone:        req.Phone,
			Location:     prov.Location,
			Price:        priceSnapshot(prov.PriceRange),
			Status:       models.BookingConfirmed,
			CreatedAt:    models.NewTimestamp(now),
		}

		err := s.Repo.Create(b, initialStatus(prov.Location, now))
		if errors.Is(err, repository.ErrDuplicate) {
			utils.GetLogger().Debug("Booking identifier collision, retrying",
				zap.String("bookingID", b.ID), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to store booking: %w", err)
		}
		return &models.CreatedBooking{BookingID: b.ID, TrackingID: b.TrackingID, Booking: b}, nil
	}
	return nil, ErrIDSpaceExhausted
}
