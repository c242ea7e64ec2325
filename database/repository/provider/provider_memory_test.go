package providerRepo

import (
	"errors"
	"testing"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

func testCatalog() []models.Provider {
	return []models.Provider{
		{ID: 1, Name: "A", Category: "Plumber", Location: "Chennai", Rating: 4.5, Services: []string{"Leak Repair"}},
		{ID: 2, Name: "B", Category: "Electrician", Location: "Coimbatore", Rating: 4.0},
	}
}

func TestCreateAssignsNextID(t *testing.T) {
	repo := NewMemoryProviderRepo(testCatalog())
	p := &models.Provider{Name: "C"}
	if err := repo.Create(p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID != 3 {
		t.Fatalf("expected id 3, got %d", p.ID)
	}
	if repo.Count() != 3 {
		t.Fatalf("expected count 3, got %d", repo.Count())
	}
	if _, err := repo.GetByID(3); err != nil {
		t.Fatalf("get new provider: %v", err)
	}
}

func TestGetByIDReturnsCopy(t *testing.T) {
	repo := NewMemoryProviderRepo(testCatalog())
	p, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	p.Services[0] = "changed"
	p.Name = "changed"

	again, _ := repo.GetByID(1)
	if again.Name != "A" || again.Services[0] != "Leak Repair" {
		t.Fatalf("catalog was mutated through a returned value: %+v", again)
	}

	if _, err := repo.GetByID(42); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAppliesAllowListOnly(t *testing.T) {
	repo := NewMemoryProviderRepo(testCatalog())
	desc := "New description"
	updated, err := repo.Update(1, models.ProviderUpdate{Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != desc {
		t.Fatalf("description not updated: %q", updated.Description)
	}
	if updated.Name != "A" || updated.Rating != 4.5 {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
	if _, err := repo.Update(9, models.ProviderUpdate{}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
