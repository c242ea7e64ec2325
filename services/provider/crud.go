// File: services/provider/crud.go
package provider

import (
	"errors"
	"fmt"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

const (
	defaultAvatar          = "🔧"
	defaultHourlyRate      = "₹500"
	defaultExperience      = "0 years"
	defaultInsuranceStatus = "none"
	defaultServiceRadius   = "10 km"
	initialRating          = 5.0
)

func (s *DefaultProviderService) ListProviders(filter models.ProviderFilter) ([]models.Provider, error) {
	providers, err := s.Repo.Find(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

func (s *DefaultProviderService) GetProviderByID(id int) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, notFound(id, err)
	}
	return prov, nil
}

// RegisterProvider adds a self-registered provider to the catalog.
// Email uniqueness is checked by the caller against the credential store.
func (s *DefaultProviderService) RegisterProvider(reg models.ProviderRegistration) (*models.Provider, error) {
	registeredAt := s.now()
	prov := &models.Provider{
		Name:             reg.Name,
		Category:         reg.Category,
		Avatar:           withDefault(reg.Avatar, defaultAvatar),
		Rating:           initialRating,
		Reviews:          0,
		Services:         reg.Services,
		PriceRange:       withDefault(reg.HourlyRate, defaultHourlyRate) + "/hour",
		Verified:         false,
		Location:         reg.Location,
		Experience:       withDefault(reg.Experience, defaultExperience),
		Description:      reg.Description,
		Phone:            reg.Phone,
		Email:            reg.Email,
		LicenseNumber:    reg.LicenseNumber,
		InsuranceStatus:  withDefault(reg.InsuranceStatus, defaultInsuranceStatus),
		WorkingDays:      reg.WorkingDays,
		WorkingHours:     reg.WorkingHours,
		ServiceRadius:    withDefault(reg.ServiceRadius, defaultServiceRadius),
		RegistrationDate: &registeredAt,
	}
	if prov.Services == nil {
		prov.Services = []string{}
	}
	if prov.WorkingDays == nil {
		prov.WorkingDays = []string{}
	}
	if prov.WorkingHours == nil {
		prov.WorkingHours = map[string]any{}
	}

	if err := s.Repo.Create(prov); err != nil {
		return nil, fmt.Errorf("failed to register provider: %w", err)
	}
	return prov, nil
}

// UpdateProvider applies the allow-listed fields only.
func (s *DefaultProviderService) UpdateProvider(id int, update models.ProviderUpdate) (*models.Provider, error) {
	prov, err := s.Repo.Update(id, update)
	if err != nil {
		return nil, notFound(id, err)
	}
	return prov, nil
}

func notFound(id int, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrProviderNotFound, id)
	}
	return err
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
