package profile

import (
	"context"

	profileRepo "superlaw/database/repository/profile"
	"superlaw/models"
	"superlaw/services/schedule"
	"superlaw/services/storage"
)

// ProfileService manages lawyer profiles and the public directory.
type ProfileService interface {
	// GetOwnProfile returns the profile owned by the given user.
	GetOwnProfile(ctx context.Context, userID string) (*models.LawyerProfile, error)
	// GetByID returns a profile by its id, schedule included.
	GetByID(ctx context.Context, id string) (*models.LawyerProfile, error)
	// EditProfile updates the profile fields and saves any submitted schedule
	// days, one replace per date.
	EditProfile(ctx context.Context, userID string, input models.ProfileInput) (*models.LawyerProfile, error)
	// UploadProfileImage stores a new profile image and records its URL.
	UploadProfileImage(ctx context.Context, userID, localFilePath string) (string, error)
	// Search lists completed profiles matching the criteria.
	Search(ctx context.Context, input models.SearchInput) ([]models.LawyerProfileView, error)
}

// DefaultProfileService implements ProfileService.
type DefaultProfileService struct {
	Repo    profileRepo.ProfileRepository
	Editor  schedule.EditorService
	Storage storage.StorageService
}
