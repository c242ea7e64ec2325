package provider

import "github.com/velaug24it-bit/serviceswebiste/models"

// GetCategories returns the distinct provider categories in first-seen order.
func (s *DefaultProviderService) GetCategories() ([]string, error) {
	return s.distinct(func(p models.Provider) string { return p.Category })
}

// GetLocations returns the distinct provider locations in first-seen order.
func (s *DefaultProviderService) GetLocations() ([]string, error) {
	return s.distinct(func(p models.Provider) string { return p.Location })
}

func (s *DefaultProviderService) distinct(field func(models.Provider) string) ([]string, error) {
	providers, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(providers))
	out := make([]string, 0)
	for _, p := range providers {
		v := field(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}
