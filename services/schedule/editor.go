package schedule

import (
	"context"
	"fmt"

	profileRepo "superlaw/database/repository/profile"
	"superlaw/models"
	"superlaw/utils"

	"go.uber.org/zap"
)

// EditorService is the server side of the availability editor. The UI keeps
// one day "in progress" and commits it on save or when switching dates; both
// commit points land here as an explicit SaveDay call.
type EditorService interface {
	// GetDay returns the stored day for the date, or a fresh empty day.
	GetDay(ctx context.Context, profileID, date string) (models.ScheduleDay, error)
	// SaveDay validates the edited day and merges it into the calendar,
	// replacing any stored day for the same date. Saving an empty day clears
	// that date's availability.
	SaveDay(ctx context.Context, profileID string, day models.ScheduleDay) (models.ScheduleDay, error)
	// ListDays returns the whole calendar, ordered by date ascending.
	ListDays(ctx context.Context, profileID string) ([]models.ScheduleDay, error)
}

// DefaultEditorService implements EditorService over the profile repository.
type DefaultEditorService struct {
	Repo      profileRepo.ProfileRepository
	Validator *Validator
	Locks     *ProfileLocks
}

func (s *DefaultEditorService) GetDay(ctx context.Context, profileID, date string) (models.ScheduleDay, error) {
	if err := s.Validator.ValidateDate(date); err != nil {
		return models.ScheduleDay{}, err
	}
	days, err := s.Repo.GetSchedule(ctx, profileID)
	if err != nil {
		return models.ScheduleDay{}, fmt.Errorf("failed to load schedule: %w", err)
	}
	return models.NewAvailabilityCalendar(profileID, days).SelectDay(date), nil
}

func (s *DefaultEditorService) SaveDay(ctx context.Context, profileID string, day models.ScheduleDay) (models.ScheduleDay, error) {
	unlock := s.Locks.Lock(profileID)
	defer unlock()

	days, err := s.Repo.GetSchedule(ctx, profileID)
	if err != nil {
		return models.ScheduleDay{}, fmt.Errorf("failed to load schedule: %w", err)
	}
	stored := models.NewAvailabilityCalendar(profileID, days).SelectDay(day.Date)

	if err := s.Validator.ValidateDay(stored, day); err != nil {
		return models.ScheduleDay{}, err
	}

	normalized, err := s.normalizeDay(ctx, stored, day)
	if err != nil {
		return models.ScheduleDay{}, err
	}

	if err := s.Repo.ReplaceScheduleDay(ctx, profileID, normalized); err != nil {
		return models.ScheduleDay{}, fmt.Errorf("failed to save schedule day: %w", err)
	}

	utils.GetLogger().Info("Schedule day saved",
		zap.String("profileId", profileID),
		zap.String("date", normalized.Date),
		zap.Int("slots", len(normalized.TimeSlots)))
	return normalized, nil
}

func (s *DefaultEditorService) ListDays(ctx context.Context, profileID string) ([]models.ScheduleDay, error) {
	days, err := s.Repo.GetSchedule(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return models.NewAvailabilityCalendar(profileID, days).ListDays(), nil
}

// normalizeDay finalizes an edited day for storage: booking state always
// comes from the stored day (the editor can neither book nor unbook), and
// freshly added slots (id 0) get repository-assigned ids.
func (s *DefaultEditorService) normalizeDay(ctx context.Context, stored, submitted models.ScheduleDay) (models.ScheduleDay, error) {
	out := submitted
	out.TimeSlots = make([]models.TimeSlot, len(submitted.TimeSlots))
	copy(out.TimeSlots, submitted.TimeSlots)

	var fresh int
	for i := range out.TimeSlots {
		if kept, ok := stored.SlotByID(out.TimeSlots[i].ID); ok && out.TimeSlots[i].ID != 0 {
			out.TimeSlots[i].HasMeeting = kept.HasMeeting
			out.TimeSlots[i].ClientName = kept.ClientName
			continue
		}
		out.TimeSlots[i].HasMeeting = false
		out.TimeSlots[i].ClientName = ""
		if out.TimeSlots[i].ID == 0 {
			fresh++
		}
	}

	if fresh > 0 {
		ids, err := s.Repo.NextSlotIDs(ctx, fresh)
		if err != nil {
			return models.ScheduleDay{}, fmt.Errorf("failed to assign slot ids: %w", err)
		}
		next := 0
		for i := range out.TimeSlots {
			if out.TimeSlots[i].ID == 0 {
				out.TimeSlots[i].ID = ids[next]
				next++
			}
		}
	}
	return out, nil
}
