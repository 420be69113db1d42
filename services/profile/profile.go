package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"superlaw/models"
	"superlaw/utils"

	"go.uber.org/zap"
)

const (
	minHourlyRate = 100
	maxHourlyRate = 500
)

func (s *DefaultProfileService) GetOwnProfile(ctx context.Context, userID string) (*models.LawyerProfile, error) {
	profile, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}
	return profile, nil
}

func (s *DefaultProfileService) GetByID(ctx context.Context, id string) (*models.LawyerProfile, error) {
	profile, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}
	return profile, nil
}

// EditProfile validates and applies the profile editor payload. A profile can
// only be marked completed once every required field is filled in; submitted
// schedule days go through the availability editor so booked slots stay
// protected.
func (s *DefaultProfileService) EditProfile(ctx context.Context, userID string, input models.ProfileInput) (*models.LawyerProfile, error) {
	profile, err := s.GetOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.IsCompleted {
		if err := validateCompleted(input); err != nil {
			return nil, err
		}
	}

	profile.Description = input.Description
	profile.HourlyRate = input.HourlyRate
	profile.Address = input.Address
	profile.Categories = input.Categories
	profile.Regions = input.Regions
	profile.IsJunior = input.IsJunior
	profile.IsCompleted = input.IsCompleted
	profile.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	for _, day := range input.Schedule {
		if _, err := s.Editor.SaveDay(ctx, profile.ID, day); err != nil {
			return nil, err
		}
	}

	updated, err := s.Repo.GetByID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	utils.GetLogger().Info("Profile updated",
		zap.String("profileId", profile.ID),
		zap.Bool("isCompleted", input.IsCompleted))
	return updated, nil
}

func validateCompleted(input models.ProfileInput) error {
	if strings.TrimSpace(input.Description) == "" {
		return errors.New("description is required")
	}
	if input.HourlyRate < minHourlyRate || input.HourlyRate > maxHourlyRate {
		return fmt.Errorf("hourly rate must be between %d and %d", minHourlyRate, maxHourlyRate)
	}
	if strings.TrimSpace(input.Address) == "" {
		return errors.New("address is required")
	}
	if len(input.Categories) == 0 {
		return errors.New("at least one legal category is required")
	}
	if len(input.Regions) == 0 {
		return errors.New("at least one judicial region is required")
	}
	return nil
}

// UploadProfileImage uploads the image and stores its delivery URL on the
// profile.
func (s *DefaultProfileService) UploadProfileImage(ctx context.Context, userID, localFilePath string) (string, error) {
	profile, err := s.GetOwnProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	publicID, err := s.Storage.UploadFile(ctx, localFilePath, "profile-images")
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}
	url, err := s.Storage.ImageURL(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve image URL: %w", err)
	}

	profile.ImageURL = url
	profile.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, profile); err != nil {
		return "", fmt.Errorf("failed to store image URL: %w", err)
	}
	return url, nil
}
