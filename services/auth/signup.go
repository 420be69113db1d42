package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"superlaw/models"
	"superlaw/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a client account. The account stays unusable until the
// mailed confirmation link is followed.
func (s *DefaultAuthService) RegisterUser(ctx context.Context, input models.RegisterUserInput) (*models.User, error) {
	user, err := s.createAccount(ctx, input, models.RoleUser)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterLawyer creates a lawyer account plus an empty profile. The profile
// stays out of search results until the lawyer completes it.
func (s *DefaultAuthService) RegisterLawyer(ctx context.Context, input models.RegisterLawyerInput) (*models.User, error) {
	if strings.TrimSpace(input.Surname) == "" {
		return nil, errors.New("surname is required")
	}
	if strings.TrimSpace(input.LawyerIDNumber) == "" {
		return nil, errors.New("lawyer id number is required")
	}

	user, err := s.createAccount(ctx, input.RegisterUserInput, models.RoleLawyer)
	if err != nil {
		return nil, err
	}
	user.Surname = input.Surname
	user.LawyerIDNumber = input.LawyerIDNumber

	now := time.Now()
	profile := &models.LawyerProfile{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		FullName:  fmt.Sprintf("%s %s %s", input.FirstName, input.Surname, input.LastName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create lawyer profile: %w", err)
	}

	utils.GetLogger().Info("Lawyer registered",
		zap.String("userId", user.ID),
		zap.String("profileId", profile.ID))
	return user, nil
}

func (s *DefaultAuthService) createAccount(ctx context.Context, input models.RegisterUserInput, role string) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, errors.New("an account with this email already exists")
	}

	city, err := s.SimpleData.GetCity(ctx, input.CityID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify city: %w", err)
	}
	if city == nil {
		return nil, errors.New("unknown city")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		Phone:        input.Phone,
		CityID:       input.CityID,
		Role:         role,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := utils.InitiateEmailConfirmation(email); err != nil {
		utils.GetLogger().Error("Failed to initiate email confirmation",
			zap.String("email", email), zap.Error(err))
	}
	return user, nil
}

// ConfirmEmail verifies the mailed token and activates the account.
func (s *DefaultAuthService) ConfirmEmail(ctx context.Context, email, token string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}
	if user == nil {
		return errors.New("account not found")
	}
	if user.EmailConfirmed {
		return nil
	}

	ok, err := utils.VerifyEmailConfirmation(email, token)
	if err != nil {
		return fmt.Errorf("failed to verify confirmation token: %w", err)
	}
	if !ok {
		return errors.New("invalid or expired confirmation token")
	}

	if err := s.Users.SetEmailConfirmed(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to confirm email: %w", err)
	}
	utils.GetLogger().Info("Email confirmed", zap.String("userId", user.ID))
	return nil
}
