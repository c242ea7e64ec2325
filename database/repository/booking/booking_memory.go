package bookingRepo

import (
	"fmt"
	"sync"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

// MemoryBookingRepo implements BookingRepository. One mutex owns both maps.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	order    []string
	bookings map[string]*models.Booking
	statuses map[string]*models.BookingStatus
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{
		bookings: make(map[string]*models.Booking),
		statuses: make(map[string]*models.BookingStatus),
	}
}

func (r *MemoryBookingRepo) Create(booking models.Booking, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("booking %s: %w", booking.ID, repository.ErrDuplicate)
	}
	r.bookings[booking.ID] = &booking
	r.statuses[booking.ID] = &status
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *MemoryBookingRepo) tracking(id string) *models.Tracking {
	t := &models.Tracking{Booking: *r.bookings[id]}
	if s, ok := r.statuses[id]; ok {
		t.StatusInfo = *s
	}
	return t
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Tracking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.bookings[id]; !ok {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	return r.tracking(id), nil
}

func (r *MemoryBookingRepo) GetByTrackingID(trackingID string) (*models.Tracking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.bookings[id].TrackingID == trackingID {
			return r.tracking(id), nil
		}
	}
	return nil, fmt.Errorf("tracking id %s: %w", trackingID, repository.ErrNotFound)
}

func (r *MemoryBookingRepo) GetAll() ([]models.BookingView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BookingView, 0, len(r.order))
	for _, id := range r.order {
		view := models.BookingView{Booking: *r.bookings[id]}
		if s, ok := r.statuses[id]; ok {
			status := *s
			view.StatusInfo = &status
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *MemoryBookingRepo) GetByProviderID(providerID int) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, id := range r.order {
		if b := r.bookings[id]; b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) Mutate(id string, fn MutateFunc) (*models.Tracking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	s, ok := r.statuses[id]
	if !ok {
		s = &models.BookingStatus{}
		r.statuses[id] = s
	}
	booking, status := *b, *s
	if err := fn(&booking, &status); err != nil {
		return nil, err
	}
	*b, *s = booking, status
	return r.tracking(id), nil
}

func (r *MemoryBookingRepo) MutateAll(fn func(booking *models.Booking, status *models.BookingStatus) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := 0
	for _, id := range r.order {
		s, ok := r.statuses[id]
		if !ok {
			continue
		}
		if fn(r.bookings[id], s) {
			changed++
		}
	}
	return changed
}

func (r *MemoryBookingRepo) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.bookings = make(map[string]*models.Booking)
	r.statuses = make(map[string]*models.BookingStatus)
}
