package auth

import (
	"context"

	profileRepo "superlaw/database/repository/profile"
	simpledataRepo "superlaw/database/repository/simpledata"
	userRepo "superlaw/database/repository/user"
	"superlaw/models"
)

// AuthService covers registration, email confirmation and session handling.
type AuthService interface {
	// RegisterUser creates a client account and kicks off email confirmation.
	RegisterUser(ctx context.Context, input models.RegisterUserInput) (*models.User, error)
	// RegisterLawyer creates a lawyer account together with an empty, not yet
	// completed profile.
	RegisterLawyer(ctx context.Context, input models.RegisterLawyerInput) (*models.User, error)
	// ConfirmEmail verifies the mailed confirmation token.
	ConfirmEmail(ctx context.Context, email, token string) error
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input models.LoginInput) (*models.UserInfo, error)
	// Logout revokes the user's current session token.
	Logout(ctx context.Context, userID string) error
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Users      userRepo.UserRepository
	Profiles   profileRepo.ProfileRepository
	SimpleData simpledataRepo.SimpleDataRepository
}
