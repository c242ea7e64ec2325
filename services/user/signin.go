package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies the credentials and role, then issues a session token.
func (s *DefaultUserService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeCustomer
	}

	userRec, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if userRec.UserType != userType {
		return nil, ErrInvalidAccountType
	}

	token, err := s.Tokens.GenerateToken(userRec.ID, userRec.Email, userRec.UserType)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	resp := userRec.Public()
	if userType == models.UserTypeProvider && userRec.ProviderID != 0 {
		if prov, err := s.Providers.GetProviderByID(userRec.ProviderID); err == nil {
			resp.Provider = prov
		} else {
			utils.GetLogger().Warn("Provider profile missing for account",
				zap.Int("providerID", userRec.ProviderID), zap.Error(err))
		}
	}

	return &models.AuthResponse{
		User:      resp,
		Token:     token,
		ExpiresAt: time.Now().Add(s.Tokens.TTL()),
	}, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Revoke(ctx, token, s.Tokens.TTL())
}

func (s *DefaultUserService) GetCurrentUser(email string) (*models.UserResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := userRec.Public()
	return &resp, nil
}
