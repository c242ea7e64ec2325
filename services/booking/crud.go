package booking

import (
	"fmt"

	"github.com/velaug24it-bit/serviceswebiste/models"
)

func (s *DefaultBookingService) TrackByBookingID(bookingID string) (*models.Tracking, error) {
	t, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, bookingNotFound(bookingID, err)
	}
	return t, nil
}

func (s *DefaultBookingService) TrackByTrackingID(trackingID string) (*models.Tracking, error) {
	t, err := s.Repo.GetByTrackingID(trackingID)
	if err != nil {
		return nil, bookingNotFound(trackingID, err)
	}
	return t, nil
}

// ListNewestFirst returns every booking with its status, most recent first.
func (s *DefaultBookingService) ListNewestFirst() ([]models.BookingView, error) {
	views, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
		views[i], views[j] = views[j], views[i]
	}
	return views, nil
}

// ClearAll drops every booking together with its status record.
func (s *DefaultBookingService) ClearAll() {
	s.Repo.Clear()
}

func (s *DefaultBookingService) GetStats() (*models.Stats, error) {
	views, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	stats := &models.Stats{
		TotalProviders:      s.ProviderRepo.Count(),
		TotalBookings:       len(views),
		RegisteredCustomers: s.UserRepo.CountByType(models.UserTypeCustomer),
		RegisteredProviders: s.UserRepo.CountByType(models.UserTypeProvider),
	}
	for _, v := range views {
		switch v.Status {
		case models.BookingCompleted:
			stats.CompletedBookings++
		case models.BookingCancelled:
		default:
			stats.ActiveBookings++
		}
	}
	return stats, nil
}
