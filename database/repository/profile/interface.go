package profileRepo

import (
	"context"

	"superlaw/models"
)

// SearchCriteria filters the public lawyer directory. Sort accepts "name",
// "-name", "rate" or "-rate"; empty means name ascending.
type SearchCriteria struct {
	Name       string
	Categories []int
	Regions    []int
	Sort       string
}

// ProfileRepository defines data access for lawyer profiles and their
// availability schedules.
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.LawyerProfile) error
	GetByID(ctx context.Context, id string) (*models.LawyerProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.LawyerProfile, error)
	Update(ctx context.Context, profile *models.LawyerProfile) error

	// GetSchedule returns all stored schedule days for a profile.
	GetSchedule(ctx context.Context, profileID string) ([]models.ScheduleDay, error)

	// ReplaceScheduleDay removes any stored day with the same date and, when
	// the day is not empty, inserts the new one (last writer wins per date).
	ReplaceScheduleDay(ctx context.Context, profileID string, day models.ScheduleDay) error

	// NextSlotIDs reserves n slot ids from the counters collection.
	NextSlotIDs(ctx context.Context, n int) ([]int64, error)

	// BookSlot atomically flips hasMeeting false -> true on the targeted slot
	// and binds the client name. It reports whether the update matched an
	// unbooked slot.
	BookSlot(ctx context.Context, profileID, date string, slotID int64, clientName string) (bool, error)

	Search(ctx context.Context, criteria SearchCriteria) ([]models.LawyerProfileView, error)
}
