package providerRepo

import "github.com/velaug24it-bit/serviceswebiste/models"

// ProviderRepository defines methods for provider catalog access.
// Listings are always returned in insertion order.
type ProviderRepository interface {
	// GetByID retrieves a provider by its identifier.
	GetByID(id int) (*models.Provider, error)
	// GetAll retrieves the whole catalog.
	GetAll() ([]models.Provider, error)
	// Find returns the providers matching every predicate of the filter.
	Find(filter models.ProviderFilter) ([]models.Provider, error)
	// Create assigns the next identifier (catalog size + 1) and appends the provider.
	Create(provider *models.Provider) error
	// Update applies an allow-listed partial update and returns the updated provider.
	Update(id int, update models.ProviderUpdate) (*models.Provider, error)
	// Count returns the catalog size.
	Count() int
}
