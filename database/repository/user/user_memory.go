package userRepo

import (
	"fmt"
	"sync"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

// MemoryUserRepo implements UserRepository with a map keyed by email.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]models.User)}
}

func (r *MemoryUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("user with email %s: %w", email, repository.ErrNotFound)
	}
	return &u, nil
}

func (r *MemoryUserRepo) Create(user *models.User) error {
	if user == nil {
		return fmt.Errorf("failed to create user: nil user")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return fmt.Errorf("user with email %s: %w", user.Email, repository.ErrDuplicate)
	}
	r.users[user.Email] = *user
	return nil
}

func (r *MemoryUserRepo) CountByType(userType string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, u := range r.users {
		if u.UserType == userType {
			n++
		}
	}
	return n
}
