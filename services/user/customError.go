package user

import "errors"

var (
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidAccountType is returned when the login role does not match the account.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrUserNotFound is returned when a valid session names a missing account.
	ErrUserNotFound = errors.New("user not found")
)
