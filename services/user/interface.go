package user

import (
	"context"
	"sync"

	userRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/user"
	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/services/provider"
	"github.com/velaug24it-bit/serviceswebiste/services/session"
	"github.com/velaug24it-bit/serviceswebiste/utils"
)

type UserService interface {
	// Registration
	RegisterCustomer(reg models.CustomerRegistration) (*models.UserResponse, error)
	RegisterProvider(reg models.ProviderRegistration) (*models.Provider, *models.UserResponse, error)

	// Authentication
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error

	// User Management
	GetCurrentUser(email string) (*models.UserResponse, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Providers provider.ProviderService
	Tokens    *utils.TokenIssuer
	Sessions  session.Store

	// registerMu serialises the email check with the inserts that follow it.
	registerMu sync.Mutex
}

func NewDefaultUserService(
	repo userRepo.UserRepository,
	providers provider.ProviderService,
	tokens *utils.TokenIssuer,
	sessions session.Store,
) *DefaultUserService {
	return &DefaultUserService{
		Repo:      repo,
		Providers: providers,
		Tokens:    tokens,
		Sessions:  sessions,
	}
}
