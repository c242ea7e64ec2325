package userRepo

import "github.com/velaug24it-bit/serviceswebiste/models"

// UserRepository defines methods for credential record access.
type UserRepository interface {
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record; the email must be unused.
	Create(user *models.User) error
	// CountByType returns how many users carry the given role tag.
	CountByType(userType string) int
}
