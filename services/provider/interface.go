package provider

import (
	"time"

	bookingRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/booking"
	providerRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/provider"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

// ProviderService is the provider catalog.
type ProviderService interface {
	// Catalog
	ListProviders(filter models.ProviderFilter) ([]models.Provider, error)
	GetProviderByID(id int) (*models.Provider, error)
	RegisterProvider(reg models.ProviderRegistration) (*models.Provider, error)
	UpdateProvider(id int, update models.ProviderUpdate) (*models.Provider, error)

	// Derived reads
	GetCategories() ([]string, error)
	GetLocations() ([]string, error)
	GetDashboard(id int) (*models.ProviderDashboard, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo        providerRepo.ProviderRepository
	BookingRepo bookingRepo.BookingRepository
	Now         func() time.Time
}

func NewDefaultProviderService(repo providerRepo.ProviderRepository, bookings bookingRepo.BookingRepository) *DefaultProviderService {
	return &DefaultProviderService{
		Repo:        repo,
		BookingRepo: bookings,
		Now:         time.Now,
	}
}

func (s *DefaultProviderService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
