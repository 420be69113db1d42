package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"superlaw/config"

	"go.uber.org/zap"
)

const confirmTokenTTL = 24 * time.Hour

// generateSecureToken generates a secure random token of the specified length.
// It returns a base32 encoded string (without padding) truncated to the desired length.
func generateSecureToken(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(token) > length {
		token = token[:length]
	}
	return token, nil
}

// SendEmail delivers a mail message. Replace the body with an actual SMTP or
// transactional-mail integration; for now the outgoing mail is logged.
func SendEmail(to, subject, body string) error {
	GetLogger().Sugar().Infof("Sending email to %s [%s]: %s", to, subject, body)
	return nil
}

// InitiateEmailConfirmation generates a confirmation token, stores it in
// Redis with a 24-hour TTL, and mails the confirmation link.
func InitiateEmailConfirmation(email string) error {
	token, err := generateSecureToken(32)
	if err != nil {
		return fmt.Errorf("failed to generate confirmation token: %w", err)
	}

	ctx := context.Background()
	client := GetConfirmCacheClient()
	key := fmt.Sprintf("confirm:%s", email)

	if err := client.Set(ctx, key, token, confirmTokenTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache confirmation token", zap.Error(err))
		return fmt.Errorf("failed to initiate email confirmation")
	}

	link := fmt.Sprintf("%s?token=%s&email=%s", config.AppConfig.EmailConfirmURL, token, email)
	return SendEmail(email, "Account confirmation",
		fmt.Sprintf("Please confirm your email by following this link: %s", link))
}

// VerifyEmailConfirmation checks a confirmation token against the stored one
// and consumes it on success.
func VerifyEmailConfirmation(email, token string) (bool, error) {
	ctx := context.Background()
	client := GetConfirmCacheClient()
	key := fmt.Sprintf("confirm:%s", email)

	stored, err := client.Get(ctx, key).Result()
	if err != nil {
		return false, nil // expired or never issued
	}
	if stored != token {
		return false, nil
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		GetLogger().Warn("Failed to delete consumed confirmation token", zap.Error(err))
	}
	return true, nil
}
