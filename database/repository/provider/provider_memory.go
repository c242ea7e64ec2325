package providerRepo

import (
	"fmt"
	"sync"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

// MemoryProviderRepo implements ProviderRepository over an ordered slice.
type MemoryProviderRepo struct {
	mu        sync.RWMutex
	providers []models.Provider
}

// NewMemoryProviderRepo creates a catalog pre-populated with the given providers.
func NewMemoryProviderRepo(seed []models.Provider) *MemoryProviderRepo {
	providers := make([]models.Provider, 0, len(seed))
	for _, p := range seed {
		providers = append(providers, p.Clone())
	}
	return &MemoryProviderRepo{providers: providers}
}

func (r *MemoryProviderRepo) indexOf(id int) int {
	for i := range r.providers {
		if r.providers[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryProviderRepo) GetByID(id int) (*models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("provider with id %d: %w", id, repository.ErrNotFound)
	}
	p := r.providers[i].Clone()
	return &p, nil
}

func (r *MemoryProviderRepo) GetAll() ([]models.Provider, error) {
	return r.Find(models.ProviderFilter{})
}

func (r *MemoryProviderRepo) Find(filter models.ProviderFilter) ([]models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		if filter.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// Create assigns the identifier under the catalog lock. Identifiers are not
// collision-safe if providers were ever removed; the catalog never deletes.
func (r *MemoryProviderRepo) Create(provider *models.Provider) error {
	if provider == nil {
		return fmt.Errorf("failed to create provider: nil provider")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	provider.ID = len(r.providers) + 1
	r.providers = append(r.providers, provider.Clone())
	return nil
}

func (r *MemoryProviderRepo) Update(id int, update models.ProviderUpdate) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("provider with id %d: %w", id, repository.ErrNotFound)
	}
	update.Apply(&r.providers[i])
	p := r.providers[i].Clone()
	return &p, nil
}

func (r *MemoryProviderRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
