package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"superlaw/models"
	"superlaw/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenTTL = 24 * time.Hour

// Login verifies credentials, issues a 24h session token and stores its hash
// so the session can be revoked server side.
func (s *DefaultAuthService) Login(ctx context.Context, input models.LoginInput) (*models.UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if user == nil {
		return nil, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}
	if !user.EmailConfirmed {
		return nil, errors.New("email address not confirmed yet")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if err := s.Users.SetTokenHash(ctx, user.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	utils.GetLogger().Info("User logged in", zap.String("userId", user.ID), zap.String("role", user.Role))
	return &models.UserInfo{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		IDToken: token,
	}, nil
}

// Logout clears the stored token hash, revoking any outstanding session.
func (s *DefaultAuthService) Logout(ctx context.Context, userID string) error {
	if err := s.Users.SetTokenHash(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
