package repository

import (
	"context"
	"errors"
	"time"

	authdomain "planner-backend/internal/auth/domain"
)

var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the interface for user data access.
// Finders return (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id uint) (*authdomain.User, error)
	Update(user *authdomain.User) error
}

// RevocationRepository is the revocation list consulted on every authenticated request.
// Revoke reports whether this call recorded the revocation; false means the token was already revoked.
type RevocationRepository interface {
	Revoke(ctx context.Context, userID uint, token string, expiresAt time.Time) (bool, error)
	IsRevoked(ctx context.Context, token string) (bool, error)
}
