package user

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) RegisterCustomer(reg models.CustomerRegistration) (*models.UserResponse, error) {
	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	if err := s.ensureEmailFree(reg.Email); err != nil {
		return nil, err
	}
	hash, err := hashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Email:        reg.Email,
		PasswordHash: hash,
		Name:         reg.Name,
		Phone:        reg.Phone,
		Location:     reg.Location,
		UserType:     models.UserTypeCustomer,
		CreatedAt:    time.Now(),
	}
	if err := s.create(u); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Customer registered", zap.String("userID", u.ID), zap.String("email", u.Email))
	resp := u.Public()
	return &resp, nil
}

// RegisterProvider creates the catalog entry first, then the credential that points at it.
func (s *DefaultUserService) RegisterProvider(reg models.ProviderRegistration) (*models.Provider, *models.UserResponse, error) {
	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	if err := s.ensureEmailFree(reg.Email); err != nil {
		return nil, nil, err
	}
	hash, err := hashPassword(reg.Password)
	if err != nil {
		return nil, nil, err
	}

	prov, err := s.Providers.RegisterProvider(reg)
	if err != nil {
		return nil, nil, err
	}

	u := &models.User{
		ID:           strconv.Itoa(prov.ID),
		Email:        reg.Email,
		PasswordHash: hash,
		Name:         reg.Name,
		Phone:        reg.Phone,
		UserType:     models.UserTypeProvider,
		ProviderID:   prov.ID,
		CreatedAt:    time.Now(),
	}
	if err := s.create(u); err != nil {
		return nil, nil, err
	}

	utils.GetLogger().Info("Provider registered", zap.Int("providerID", prov.ID), zap.String("email", u.Email))
	resp := u.Public()
	return prov, &resp, nil
}

func (s *DefaultUserService) ensureEmailFree(email string) error {
	_, err := s.Repo.GetByEmail(email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check email: %w", err)
	}
}

func (s *DefaultUserService) create(u *models.User) error {
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
