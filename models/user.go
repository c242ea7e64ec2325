// models/user.go
package models

import "time"

const (
	UserTypeCustomer = "customer"
	UserTypeProvider = "provider"
)

// User is a credential record keyed by email.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	UserType     string    `json:"userType"`
	ProviderID   int       `json:"providerId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserResponse is the public view of a user. Provider is set on provider logins.
type UserResponse struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	UserType string    `json:"userType"`
	Provider *Provider `json:"provider,omitempty"`
}

func (u User) Public() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		UserType: u.UserType,
	}
}

// CustomerRegistration is the sign-up payload of a customer account.
type CustomerRegistration struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// LoginRequest authenticates a user of the given type, "customer" when omitted.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}
