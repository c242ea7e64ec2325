// Package session tracks logged-out tokens until they would have expired anyway.
package session

import (
	"context"
	"time"
)

// Store records revoked session tokens.
type Store interface {
	// Revoke marks the token as logged out for ttl.
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	// IsRevoked reports whether the token was logged out.
	IsRevoked(ctx context.Context, token string) (bool, error)
}
