package userRepo

import (
	"context"

	"superlaw/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address; nil if none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByTokenHash retrieves the user holding the given auth token hash.
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	// SetEmailConfirmed marks a user's email as confirmed.
	SetEmailConfirmed(ctx context.Context, userID string) error
	// SetTokenHash stores the hash of the user's current auth token; an empty
	// hash revokes it.
	SetTokenHash(ctx context.Context, userID, tokenHash string) error
}
