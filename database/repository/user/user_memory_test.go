package userRepo

import (
	"errors"
	"testing"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

func TestCreateAndCount(t *testing.T) {
	repo := NewMemoryUserRepo()
	users := []models.User{
		{ID: "u1", Email: "a@example.com", UserType: models.UserTypeCustomer},
		{ID: "u2", Email: "b@example.com", UserType: models.UserTypeCustomer},
		{ID: "13", Email: "c@example.com", UserType: models.UserTypeProvider, ProviderID: 13},
	}
	for i := range users {
		if err := repo.Create(&users[i]); err != nil {
			t.Fatalf("create %s: %v", users[i].Email, err)
		}
	}

	if err := repo.Create(&models.User{Email: "a@example.com"}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if n := repo.CountByType(models.UserTypeCustomer); n != 2 {
		t.Fatalf("expected 2 customers, got %d", n)
	}
	if n := repo.CountByType(models.UserTypeProvider); n != 1 {
		t.Fatalf("expected 1 provider, got %d", n)
	}

	u, err := repo.GetByEmail("c@example.com")
	if err != nil || u.ProviderID != 13 {
		t.Fatalf("unexpected lookup result %+v, %v", u, err)
	}
	if _, err := repo.GetByEmail("nobody@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
